// Package migrations применяет встроенные SQL миграции схемы через golang-migrate.
package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

var (
	// ErrOpenSource возвращается, если не удалось прочитать встроенные миграции
	ErrOpenSource = errors.New("migrations: failed to open embedded source")

	// ErrMigrate возвращается при ошибке применения миграций
	ErrMigrate = errors.New("migrations: failed to apply migrations")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Up применяет все новые миграции к базе databaseURL (postgres://...)
func Up(databaseURL string, log Logger) error {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpenSource, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("%w: Up - init: %v", ErrMigrate, err)
	}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Warn("Migrations: close failed source=%v db=%v", srcErr, dbErr)
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Migrations: schema is up to date")
			return nil
		}
		return fmt.Errorf("%w: Up - apply: %v", ErrMigrate, err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("%w: Up - read version: %v", ErrMigrate, err)
	}
	log.Info("Migrations: applied version=%d dirty=%t", version, dirty)
	return nil
}
