package store

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. A busy or locked database file
// is worth another attempt; everything else is not.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Retryable
		}
	}

	return NonRetryable
}

// Translate implements [ErrorClassificator]. SQLite reports schema problems
// with the generic SQLITE_ERROR code, so the message is inspected.
func (c *SQLiteErrorClassifier) Translate(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}

	switch sqliteErr.Code {
	case sqlite3.ErrError:
		msg := sqliteErr.Error()
		switch {
		case strings.Contains(msg, "no such table"):
			return ErrMoviesTableMissing
		case strings.Contains(msg, "no such column"):
			return ErrMoviesSchemaMismatch
		}
	case sqlite3.ErrCantOpen, sqlite3.ErrBusy, sqlite3.ErrLocked:
		return ErrDatabaseUnavailable
	}

	return nil
}
