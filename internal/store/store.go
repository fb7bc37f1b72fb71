// Package store persists UUIDs in a MySQL table keyed by BINARY(16).
//
// MySQL compares binary strings byte by byte as unsigned values, so ORDER BY
// on the key column agrees with uuid.Compare, and v6/v7 keys are stored in
// creation order.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/NutshellEngineering/uuid"
	"github.com/NutshellEngineering/uuid/internal/log"
)

// DefaultTable is used when Config.Table is empty.
const DefaultTable = "uuids"

var (
	// ErrInvalidTable is returned for a table name that is not a plain
	// identifier.
	ErrInvalidTable = errors.New("store: invalid table name")

	// ErrInvalidDSN is returned when the DSN cannot be parsed.
	ErrInvalidDSN = errors.New("store: invalid DSN")
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config locates the table.
type Config struct {
	DSN   string
	Table string
}

// Store reads and writes one UUID table.
type Store struct {
	db     *sql.DB
	table  string
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for statement-level diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// ParseConfig validates cfg and returns the driver configuration to connect
// with. The table name falls back to DefaultTable.
func ParseConfig(cfg Config) (*mysql.Config, string, error) {
	table := cfg.Table
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}

	mc, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidDSN, err)
	}
	if mc.DBName == "" {
		return nil, "", fmt.Errorf("%w: no database name", ErrInvalidDSN)
	}
	mc.ParseTime = true
	if mc.Loc == nil {
		mc.Loc = time.UTC
	}
	return mc, table, nil
}

// Open connects to the database named by cfg.DSN and checks that it is
// reachable. The table is not created; call Migrate for that.
func Open(ctx context.Context, cfg Config, opts ...Option) (*Store, error) {
	mc, table, err := ParseConfig(cfg)
	if err != nil {
		return nil, err
	}

	connector, err := mysql.NewConnector(mc)
	if err != nil {
		return nil, fmt.Errorf("store: connector: %w", err)
	}
	db := sql.OpenDB(connector)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{
		db:     db,
		table:  table,
		logger: log.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: ping %s@%s: %w", mc.User, mc.Addr, err)
	}
	s.logger.Debug("Connected to MySQL", "address", mc.Addr, "database", mc.DBName, "table", table)
	return s, nil
}

// Table returns the table name in use.
func (s *Store) Table() string {
	return s.table
}

// Migrate creates the table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL(s.table)); err != nil {
		return fmt.Errorf("store: create table %s: %w", s.table, err)
	}
	return nil
}

// Save inserts ids in a single transaction; either all of them are stored or
// none is. Time-based UUIDs also record their embedded instant.
func (s *Store) Save(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertSQL(s.table))
	if err != nil {
		return fmt.Errorf("store: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, id := range ids {
		version, createdAt := row(id)
		if _, err := stmt.ExecContext(ctx, id.Bytes(), version, createdAt); err != nil {
			return fmt.Errorf("store: insert %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	s.logger.Debug("Saved UUIDs", "table", s.table, "count", len(ids))
	return nil
}

// Latest returns up to n of the greatest keys, greatest first.
func (s *Store) Latest(ctx context.Context, n int) ([]uuid.UUID, error) {
	return s.query(ctx, latestSQL(s.table), n)
}

// Range returns up to limit keys k with from <= k < to, in ascending order.
func (s *Store) Range(ctx context.Context, from, to uuid.UUID, limit int) ([]uuid.UUID, error) {
	return s.query(ctx, rangeSQL(s.table), from.Bytes(), to.Bytes(), limit)
}

// Count returns the number of stored keys.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, countSQL(s.table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	return n, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: query: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: rows: %w", err)
	}
	return ids, nil
}

// row returns the version and the nullable creation instant stored next to id.
func row(id uuid.UUID) (uint8, sql.NullTime) {
	var createdAt sql.NullTime
	if t, err := uuid.RealTimestamp(id); err == nil {
		createdAt = sql.NullTime{Time: t, Valid: true}
	}
	return uint8(id.Version()), createdAt
}

func createTableSQL(table string) string {
	return "CREATE TABLE IF NOT EXISTS `" + table + "` (" +
		"id BINARY(16) NOT NULL PRIMARY KEY, " +
		"version TINYINT UNSIGNED NOT NULL, " +
		"created_at DATETIME(3) NULL" +
		")"
}

func insertSQL(table string) string {
	return "INSERT INTO `" + table + "` (id, version, created_at) VALUES (?, ?, ?)"
}

func latestSQL(table string) string {
	return "SELECT id FROM `" + table + "` ORDER BY id DESC LIMIT ?"
}

func rangeSQL(table string) string {
	return "SELECT id FROM `" + table + "` WHERE id >= ? AND id < ? ORDER BY id LIMIT ?"
}

func countSQL(table string) string {
	return "SELECT COUNT(*) FROM `" + table + "`"
}
