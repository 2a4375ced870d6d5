// Command migrate applies the SQL schema in migrations/ to the configured database.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"joinme/config"
	logs "joinme/internal/infra/log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
)

// Supported subcommands:
// - up:      apply all pending migrations
// - down:    roll back the given number of migrations
// - version: print the current schema version
// - force:   mark a version as applied after a failed run

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)
	forceCmd := flag.NewFlagSet("force", flag.ExitOnError)

	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")
	forceVersion := forceCmd.Int("version", -1, "Version to force")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	m, err := newMigrate(cfg.Migrations)
	if err != nil {
		logger.Error("Failed to open migrations", slog.Any("error", err))
		os.Exit(1)
	}
	defer m.Close()

	switch os.Args[1] {
	case "up":
		_ = upCmd.Parse(os.Args[2:])
		err = ignoreNoChange(m.Up())
	case "down":
		_ = downCmd.Parse(os.Args[2:])
		if *downSteps < 1 {
			err = errors.New("steps must be positive")

			break
		}
		err = ignoreNoChange(m.Steps(-*downSteps))
	case "version":
		_ = versionCmd.Parse(os.Args[2:])
	case "force":
		_ = forceCmd.Parse(os.Args[2:])
		if *forceVersion < 0 {
			err = errors.New("version is required")

			break
		}
		err = m.Force(*forceVersion)
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("Migration failed", slog.String("command", os.Args[1]), slog.Any("error", err))
		os.Exit(1)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		logger.Error("Failed to read schema version", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Schema version",
		slog.String("command", os.Args[1]),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)
}

func newMigrate(cfg *config.MigrationsConfig) (*migrate.Migrate, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("migrations.databaseUrl is required")
	}

	m, err := migrate.New(cfg.Path, cfg.DatabaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration instance")
	}

	return m, nil
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}

	return errors.WithStack(err)
}

func printUsage() {
	fmt.Println("Usage: migrate <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up                   Apply all pending migrations")
	fmt.Println("  down -steps N        Roll back N migrations (default 1)")
	fmt.Println("  version              Print the current schema version")
	fmt.Println("  force -version N     Mark version N as applied")
}
