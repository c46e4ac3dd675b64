package database

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3"
)

// busyTimeoutMillis bounds how long a writer waits on a locked database
// before go-sqlite3 reports SQLITE_BUSY.
const busyTimeoutMillis = 5000

type dbConn interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

type DB struct {
	conn *sql.DB
}

// New opens the lookup history database at path. The connection settings
// are passed through the DSN so every pooled connection gets them.
func New(path string) (*DB, error) {
	return open(dsn(path, true), 0)
}

func open(dataSource string, maxOpenConns int) (*DB, error) {
	conn, err := sql.Open("sqlite3", dataSource)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if maxOpenConns > 0 {
		conn.SetMaxOpenConns(maxOpenConns)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{conn: conn}, nil
}

func dsn(path string, wal bool) string {
	params := url.Values{}
	params.Set("_busy_timeout", fmt.Sprint(busyTimeoutMillis))
	params.Set("_foreign_keys", "on")
	if wal {
		params.Set("_journal_mode", "WAL")
	}
	return path + "?" + params.Encode()
}

func (db *DB) DB() *sql.DB {
	return db.conn
}

func (db *DB) Close() error {
	return db.conn.Close()
}
