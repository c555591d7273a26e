package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Options configures the MySQL connection pool.
type Options struct {
	User         string
	Pass         string
	Host         string
	Port         string
	Name         string
	TLS          bool
	MaxOpenConns int
	Timeout      time.Duration
}

// Gateway owns the process connection pool. It is created once at startup,
// passed to every component that needs the store, and closed on shutdown.
type Gateway struct {
	db *sql.DB
}

// New wraps an already opened pool. Tests hand in a sqlmock database here.
func New(db *sql.DB) *Gateway { return &Gateway{db: db} }

// Open connects to MySQL and verifies the connection.
func Open(opts Options) (*Gateway, error) {
	db, err := sql.Open("mysql", dsn(opts))
	if err != nil {
		return nil, err
	}

	maxConns := opts.MaxOpenConns
	if maxConns <= 0 {
		maxConns = 10
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	db.SetConnMaxLifetime(30 * time.Minute)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Gateway{db: db}, nil
}

func dsn(opts Options) string {
	cfg := mysql.NewConfig()
	cfg.User = opts.User
	cfg.Passwd = opts.Pass
	cfg.Net = "tcp"
	cfg.Addr = opts.Host + ":" + opts.Port
	cfg.DBName = opts.Name
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	// UPDATE reports matched rows, so an unchanged row is not "missing".
	cfg.ClientFoundRows = true
	if opts.Timeout > 0 {
		cfg.Timeout = opts.Timeout
	}
	if opts.TLS {
		// Managed MySQL providers terminate TLS with their own CA.
		cfg.TLSConfig = "skip-verify"
	}
	return cfg.FormatDSN()
}

// DB exposes the pool for single-statement reads.
func (g *Gateway) DB() *sql.DB { return g.db }

// Conn checks out a dedicated connection. The caller owns it until Close,
// which returns it to the pool; every exit path must call Close.
func (g *Gateway) Conn(ctx context.Context) (*sql.Conn, error) {
	if g == nil || g.db == nil {
		return nil, errors.New("database gateway not initialized")
	}
	return g.db.Conn(ctx)
}

// Ping reports whether the store answers within ctx.
func (g *Gateway) Ping(ctx context.Context) error {
	if g == nil || g.db == nil {
		return errors.New("database gateway not initialized")
	}
	return g.db.PingContext(ctx)
}

// Close disposes the pool.
func (g *Gateway) Close() error {
	if g == nil || g.db == nil {
		return nil
	}
	return g.db.Close()
}
