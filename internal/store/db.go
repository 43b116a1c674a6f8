package store

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

// NewDB opens the embedded database at path. ":memory:" opens a private
// in-memory database, used by the test suites.
//
// The pool is capped at a single connection: SQLite multiplexes everything
// over it, and an in-memory database is scoped to its connection.
func NewDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, srvErrors.NewStorageUnavailableError(err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, srvErrors.NewStorageUnavailableError(err)
	}
	return db, nil
}
