package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"admindash/internal/core"
	"admindash/internal/dashctl/seed"
	"admindash/internal/db"
	"admindash/internal/directory"
	"admindash/internal/docstore"
	"admindash/internal/env"
	"admindash/internal/events"
)

// RunSeedAdmin handles the `dashctl seed-admin` subcommand. It talks to
// MongoDB and Redis directly using the same environment as the server.
func RunSeedAdmin(args []string) error {
	fs := flag.NewFlagSet("seed-admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	deployment := fs.String("deployment", "dev", "deployment profile (dev|test|prod)")
	envRoot := fs.String("env-root", "", "directory containing environment files")
	email := fs.String("email", "", "administrator email")
	password := fs.String("password", "", "administrator password")
	name := fs.String("name", "Administrator", "administrator display name")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*email) == "" || *password == "" {
		return errors.New("seed-admin: --email and --password are required")
	}

	env.Init(*envRoot, "")
	if len(env.JWT_SECRET) == 0 {
		return errors.New("seed-admin: JWT_SECRET is required")
	}

	if err := db.InitDB(strings.TrimSpace(*deployment)); err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	if err := db.InitCache(); err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), env.REQUEST_TIMEOUT)
	defer cancel()

	creds := directory.NewMongoCredentials(db.Credentials)
	if err := creds.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("credential indexes: %w", err)
	}

	store := docstore.NewMongo(db.Database)
	if err := store.EnsureIndexes(ctx, db.SortKeys); err != nil {
		return fmt.Errorf("record indexes: %w", err)
	}

	dir := directory.New(creds, directory.NewRedisSessions(db.RDB), env.JWT_SECRET, env.SESSION_TTL)
	em := events.NewEmitter(store, *deployment)
	defer em.Close()

	admin, err := seed.Admin(ctx, core.New(dir, store, em).Users, store, *email, *password, *name)
	if err != nil {
		return err
	}

	fmt.Printf("System administrator %s ready (id %s)\n", admin.Email, admin.ID)
	return nil
}
