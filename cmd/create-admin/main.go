// Command create-admin provisions a back-office account, or resets the
// password of an existing one, directly against the database.
//
//	create-admin -usuario admin -rol admin -nombre Diego -apellido Gutierrez
//	create-admin -usuario admin -reset
//
// The password is read from -password or, preferably, ADMIN_PASSWORD.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/diegogutti007/sistema-golden-backend/internal/config"
	"github.com/diegogutti007/sistema-golden-backend/internal/database"
	"github.com/diegogutti007/sistema-golden-backend/internal/model"
	"github.com/diegogutti007/sistema-golden-backend/internal/repository"
	"github.com/diegogutti007/sistema-golden-backend/internal/utils"
)

type options struct {
	Username  string
	Password  string
	Role      string
	FirstName string
	LastName  string
	Email     string
	Reset     bool
}

func parseFlags(args []string, getenv func(string) string) (options, error) {
	var o options
	fs := flag.NewFlagSet("create-admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&o.Username, "usuario", "admin", "account username")
	fs.StringVar(&o.Password, "password", "", "account password (defaults to $ADMIN_PASSWORD)")
	fs.StringVar(&o.Role, "rol", "admin", "account role")
	fs.StringVar(&o.FirstName, "nombre", "Administrador", "first name")
	fs.StringVar(&o.LastName, "apellido", "Sistema", "last name")
	fs.StringVar(&o.Email, "correo", "", "email address")
	fs.BoolVar(&o.Reset, "reset", false, "reset the password of an existing account")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.Password == "" {
		o.Password = getenv("ADMIN_PASSWORD")
	}
	o.Username = strings.TrimSpace(o.Username)
	switch {
	case o.Username == "":
		return o, errors.New("-usuario is required")
	case len([]rune(o.Password)) < utils.MinPasswordLength:
		return o, fmt.Errorf("password must have at least %d characters", utils.MinPasswordLength)
	}
	return o, nil
}

// provision creates the account or, with Reset, replaces its password.
func provision(ctx context.Context, users *repository.UserRepo, o options, cost int) (string, error) {
	hash, err := utils.HashPassword(o.Password, cost)
	if err != nil {
		return "", err
	}
	if o.Reset {
		if err := users.UpdatePasswordByUsername(ctx, o.Username, hash); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return "", fmt.Errorf("user %q does not exist", o.Username)
			}
			return "", err
		}
		return fmt.Sprintf("password reset for %s", o.Username), nil
	}

	id, err := users.Create(ctx, model.User{
		FirstName:    o.FirstName,
		LastName:     o.LastName,
		Username:     o.Username,
		Email:        o.Email,
		PasswordHash: hash,
		Role:         o.Role,
		Status:       model.UserStatusActive,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return "", fmt.Errorf("user %q already exists; use -reset to change its password", o.Username)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("created %s (id %d, rol %s)", o.Username, id, o.Role), nil
}

func main() {
	_ = godotenv.Load()

	opts, err := parseFlags(os.Args[1:], os.Getenv)
	if err != nil {
		logrus.Fatalf("create-admin: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log := config.NewLogger(cfg)

	gw, err := database.Open(database.Options{
		User:    cfg.DBUser,
		Pass:    cfg.DBPass,
		Host:    cfg.DBHost,
		Port:    cfg.DBPort,
		Name:    cfg.DBName,
		TLS:     cfg.DBTLS,
		Timeout: cfg.DBConnTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	defer gw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	msg, err := provision(ctx, repository.NewUserRepo(gw.DB()), opts, cfg.BcryptCost)
	if err != nil {
		log.WithError(err).Error("create-admin failed")
		gw.Close()
		os.Exit(1)
	}
	log.Info(msg)
}
