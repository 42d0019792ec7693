package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/migrations"
)

func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// the catalogue is read once, a small pool is enough
	conn.SetMaxOpenConns(4)
	conn.SetMaxIdleConns(1)

	db := &DB{
		DB:                 conn,
		dialect:            migrations.DialectPostgres,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	if err = db.ping(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return db, nil
}
