// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // goose talks to the DB itself; no expectations means every call fails

	err = Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectSQLite)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "oracle-ish")
	if err == nil || !strings.Contains(err.Error(), "setting dialect") {
		t.Fatalf("expected dialect error, got: %v", err)
	}
}

func TestMigrate_SQLiteCreatesMoviesTable(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err = Migrate(db, DialectSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if _, err = db.Exec(`INSERT INTO movies (id, film_title, genre, country, avg_vote) VALUES (1, 'Up', 'Animation', 'USA', 8.2)`); err != nil {
		t.Fatalf("insert into migrated table: %v", err)
	}

	// running again is a no-op
	if err = Migrate(db, DialectSQLite); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}
