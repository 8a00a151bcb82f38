// Package sqlmigrate applies embedded "-- +migrate Up" SQL files at most once
// per file, recording each applied file in a schema_migrations ledger.
//
// The runner is engine-agnostic: stores hand it a Conn adapter and the
// Dialect matching their driver.
package sqlmigrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

const migrationTable = "schema_migrations"

// Dialect carries the ledger statements for one SQL engine.
type Dialect struct {
	Name          string
	CreateLedger  string
	SelectApplied string
	RecordApplied string
}

// SQLite is the dialect used with modernc.org/sqlite.
var SQLite = Dialect{
	Name: "sqlite",
	CreateLedger: `CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`,
	SelectApplied: `SELECT 1 FROM ` + migrationTable + ` WHERE name = ?`,
	RecordApplied: `INSERT OR IGNORE INTO ` + migrationTable + ` (name, applied_at) VALUES (?, ?)`,
}

// Postgres is the dialect used with jackc/pgx.
var Postgres = Dialect{
	Name: "postgres",
	CreateLedger: `CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
    name TEXT PRIMARY KEY,
    applied_at BIGINT NOT NULL
)`,
	SelectApplied: `SELECT 1 FROM ` + migrationTable + ` WHERE name = $1`,
	RecordApplied: `INSERT INTO ` + migrationTable + ` (name, applied_at) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
}

// Tx is one migration transaction.
type Tx interface {
	Exec(ctx context.Context, query string, args ...any) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Conn is the minimal connection surface the runner needs.
type Conn interface {
	Exec(ctx context.Context, query string, args ...any) error
	// Exists reports whether query returns at least one row.
	Exists(ctx context.Context, query string, args ...any) (bool, error)
	Begin(ctx context.Context) (Tx, error)
}

// Apply executes migrations found under root in migrationFS, in file name
// order, skipping files already recorded in the ledger.
func Apply(ctx context.Context, conn Conn, dialect Dialect, migrationFS fs.FS, root string) error {
	if conn == nil {
		return fmt.Errorf("migration connection is required")
	}
	if migrationFS == nil {
		return fmt.Errorf("migration filesystem is required")
	}

	readRoot := strings.TrimSpace(root)
	if readRoot == "" {
		readRoot = "."
	}
	keyRoot := readRoot
	if keyRoot == "." {
		keyRoot = ""
	}

	entries, err := fs.ReadDir(migrationFS, readRoot)
	if err != nil {
		return fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if err := conn.Exec(ctx, dialect.CreateLedger); err != nil {
		return fmt.Errorf("ensure migration table: %w", err)
	}

	for _, file := range files {
		key := file
		if keyRoot != "" {
			key = path.Join(keyRoot, file)
		}
		if err := applyOne(ctx, conn, dialect, migrationFS, path.Join(readRoot, file), key); err != nil {
			return fmt.Errorf("migration %s: %w", file, err)
		}
	}
	return nil
}

func applyOne(ctx context.Context, conn Conn, dialect Dialect, migrationFS fs.FS, filePath string, key string) error {
	content, err := fs.ReadFile(migrationFS, filePath)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	applied, err := conn.Exists(ctx, dialect.SelectApplied, key)
	if err != nil {
		return fmt.Errorf("check applied: %w", err)
	}
	if applied {
		return nil
	}
	upSQL := ExtractUpMigration(string(content))
	if strings.TrimSpace(upSQL) == "" {
		return nil
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := tx.Exec(ctx, upSQL); err != nil && !IsAlreadyExistsError(err) {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("exec: %w", err)
	}
	if err := tx.Exec(ctx, dialect.RecordApplied, key, time.Now().UTC().UnixMilli()); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("record: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// ExtractUpMigration returns the SQL in the -- +migrate Up section.
func ExtractUpMigration(content string) string {
	upIdx := strings.Index(content, "-- +migrate Up")
	if upIdx == -1 {
		return content
	}
	downIdx := strings.Index(content, "-- +migrate Down")
	if downIdx == -1 {
		return content[upIdx+len("-- +migrate Up"):]
	}
	return content[upIdx+len("-- +migrate Up") : downIdx]
}

// IsAlreadyExistsError reports whether this error indicates idempotent DDL success.
func IsAlreadyExistsError(err error) bool {
	if err == nil {
		return false
	}
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "already exists") || strings.Contains(value, "duplicate column name")
}

// FromSQL adapts a database/sql handle to Conn.
func FromSQL(db *sql.DB) Conn {
	if db == nil {
		return nil
	}
	return sqlConn{db: db}
}

type sqlConn struct {
	db *sql.DB
}

func (c sqlConn) Exec(ctx context.Context, query string, args ...any) error {
	_, err := c.db.ExecContext(ctx, query, args...)
	return err
}

func (c sqlConn) Exists(ctx context.Context, query string, args ...any) (bool, error) {
	var found int
	err := c.db.QueryRowContext(ctx, query, args...).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c sqlConn) Begin(ctx context.Context) (Tx, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return sqlTx{tx: tx}, nil
}

type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) Exec(ctx context.Context, query string, args ...any) error {
	_, err := t.tx.ExecContext(ctx, query, args...)
	return err
}

func (t sqlTx) Commit(context.Context) error   { return t.tx.Commit() }
func (t sqlTx) Rollback(context.Context) error { return t.tx.Rollback() }
