package config

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	log "github.com/sirupsen/logrus"
)

// ApplyMigrations brings the report store schema up to date before the
// server starts taking traffic.
func ApplyMigrations(cfg *Config) error {
	m, err := migrate.New(cfg.MigrationsPath, cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("schema already up to date")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Info("migrations applied")
	return nil
}
