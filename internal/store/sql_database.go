package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-movie-finder/internal/config"
	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/migrations"
)

type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded movies schema using the dialect the DB was
// opened with.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// OpenDB connects to the database named by cfg.DSN. PostgreSQL URLs go to
// pgx, "sqlite://" and "file:" DSNs as well as bare paths go to SQLite.
// Any other URL scheme yields [ErrUnsupportedDSN].
func OpenDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, "sqlite://"):
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite://"), log)
	case dsn == "", strings.Contains(dsn, "://"):
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
	default:
		return NewConnectSQLite(ctx, dsn, log)
	}
}
