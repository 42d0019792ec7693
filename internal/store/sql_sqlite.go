package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-movie-finder/internal/logger"
	"github.com/MKhiriev/go-movie-finder/migrations"
)

func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// every connection to ":memory:" is a separate database
	conn.SetMaxOpenConns(1)

	db := &DB{
		DB:                 conn,
		dialect:            migrations.DialectSQLite,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
	}

	if err = db.ping(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return db, nil
}
