package config // package config loads application configuration from environment variables

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Secrets and database credentials have no
// embedded defaults: they must be supplied by the environment.
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	DBUser         string        // database username
	DBPass         string        // database password (optional)
	DBHost         string        // database host address
	DBPort         string        // database port number
	DBName         string        // database name
	DBTLS          bool          // connect to MySQL over TLS
	DBMaxOpenConns int           // connection pool size
	DBConnTimeout  time.Duration // dial / acquire timeout
	JWTSecret      string        // secret used to sign session tokens
	TokenTTL       time.Duration // session token lifetime
	BcryptCost     int           // bcrypt cost for password hashing
	CORSOrigins    []string      // allowed browser origins
	LogLevel       string        // logrus level name
	RabbitMQURL    string        // broker URL; empty disables ledger events
	LedgerConsumer bool          // run the ledger consumer inside the server
	LedgerLogPath  string        // file the ledger consumer appends to
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	}
	return false
}

// Load reads configuration values from environment variables. Every missing
// required variable is reported in a single error so a broken deployment
// shows all of its gaps at once.
func Load() (Config, error) {
	var missing []string
	must := func(keys ...string) string {
		if v := firstEnv(keys...); v != "" {
			return v
		}
		missing = append(missing, keys[0])
		return ""
	}

	cfg := Config{
		Env:            envStr("APP_ENV", "dev"),
		Port:           firstEnvOr("5000", "APP_PORT", "PORT"),
		DBUser:         must("DB_USER", "MYSQLUSER"),
		DBPass:         firstEnv("DB_PASS", "MYSQLPASSWORD"),
		DBHost:         must("DB_HOST", "MYSQLHOST"),
		DBPort:         firstEnvOr("3306", "DB_PORT", "MYSQLPORT"),
		DBName:         must("DB_NAME", "MYSQLDATABASE"),
		DBTLS:          envBool("DB_TLS", false),
		DBMaxOpenConns: envInt("DB_MAX_OPEN_CONNS", 10),
		DBConnTimeout:  envDur("DB_CONN_TIMEOUT", 10*time.Second),
		JWTSecret:      must("JWT_SECRET"),
		TokenTTL:       time.Duration(envInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		BcryptCost:     envInt("BCRYPT_COST", 10),
		CORSOrigins:    splitList(envStr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		LogLevel:       envStr("LOG_LEVEL", "info"),
		RabbitMQURL:    firstEnv("RABBITMQ_URL", "AMQP_URL"),
		LedgerConsumer: envBool("LEDGER_CONSUMER_ENABLED", false),
		LedgerLogPath:  envStr("LEDGER_LOG_PATH", "logs/ledger.log"),
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Config{}, fmt.Errorf("missing required env vars: %s", strings.Join(missing, ", "))
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return Config{}, fmt.Errorf("invalid BCRYPT_COST: %d", cfg.BcryptCost)
	}
	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("invalid TOKEN_TTL_HOURS")
	}
	if cfg.DBMaxOpenConns < 1 {
		cfg.DBMaxOpenConns = 1
	}
	return cfg, nil
}

// firstEnv returns the first non-empty value among keys.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func firstEnvOr(def string, keys ...string) string {
	if v := firstEnv(keys...); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
