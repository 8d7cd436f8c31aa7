package postgres

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"timeline-service/internal/custom_errors"
	ports "timeline-service/internal/domain/ports/output"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// EnsureSchema brings the users and posts tables up to date. It is safe to
// run on every start: an already current schema is not an error.
func EnsureSchema(databaseURL string, log ports.Logger) (err error) {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("%w: open migrations: %v", custom_errors.ErrDatabaseInit, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return fmt.Errorf("%w: init migrate: %v", custom_errors.ErrDatabaseInit, err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil && dbErr != nil {
			err = fmt.Errorf("%w: close migrate: %v", custom_errors.ErrDatabaseInit, dbErr)
		}
		if srcErr != nil {
			log.Warn("Failed to close migration source", slog.String("error", srcErr.Error()))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Database schema is up to date")
			return nil
		}
		return fmt.Errorf("%w: apply migrations: %v", custom_errors.ErrDatabaseInit, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil {
		log.Warn("Failed to read schema version", slog.String("error", verr.Error()))
	} else {
		log.Info("Database schema migrated", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	}
	return nil
}
