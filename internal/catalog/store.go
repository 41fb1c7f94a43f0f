package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"culler/internal/dupes"
	"culler/internal/scanner"
)

//go:embed schema.sql
var schemaSQL string

// createdAtLayout keeps a fixed-width fraction so lexical ordering in SQL
// matches chronological ordering (RFC3339Nano trims trailing zeros).
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// schemaVersion is the current schema version. Bump this when the schema
// changes; old databases are rejected, not migrated.
const schemaVersion = 1

// ErrSchemaMismatch indicates the database schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("schema version mismatch")

// ErrScanNotFound indicates the requested scan id is not in the catalog.
var ErrScanNotFound = errors.New("scan not found")

// ScanRecord summarizes one persisted scan.
type ScanRecord struct {
	ID         string
	Root       string
	CreatedAt  time.Time
	EntryCount int
	GroupCount int
	WarnCount  int
	Duration   time.Duration
}

// Store manages scan history persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the on-disk location backing the store.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin schema tx: %w", err)
		}
		defer func() { _ = tx.Rollback() }()
		if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return tx.Commit()
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to start fresh)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// SaveScan persists one completed scan with its duplicate groups.
func (s *Store) SaveScan(ctx context.Context, root string, result scanner.Result, groups []dupes.Group) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin scan tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createdAt := time.Now().UTC().Format(createdAtLayout)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO scans (id, root, created_at, entry_count, group_count, warn_count, duration_ms)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		result.ScanID, root, createdAt, len(result.Entries), len(groups), len(result.Warnings),
		result.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}

	for position, entry := range result.Entries {
		qualityJSON, err := json.Marshal(entry.Quality)
		if err != nil {
			return fmt.Errorf("marshal quality for %s: %w", entry.Path, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO scan_entries (scan_id, position, path, display_name, file_size,
             normalized_title, year, score, quality_json, fingerprint)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			result.ScanID, position, entry.Path, entry.DisplayName, entry.FileSize,
			entry.NormalizedTitle, entry.Year, entry.Quality.Score, string(qualityJSON), entry.Fingerprint,
		)
		if err != nil {
			return fmt.Errorf("insert entry %s: %w", entry.Path, err)
		}
	}

	for position, group := range groups {
		membersJSON, err := json.Marshal(group.Members)
		if err != nil {
			return fmt.Errorf("marshal group %q: %w", group.Key, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO scan_groups (scan_id, position, group_key, members_json) VALUES (?, ?, ?, ?)`,
			result.ScanID, position, group.Key, string(membersJSON),
		)
		if err != nil {
			return fmt.Errorf("insert group %q: %w", group.Key, err)
		}
	}

	return tx.Commit()
}

// ListScans returns the most recent scans, newest first. A non-positive
// limit returns everything.
func (s *Store) ListScans(ctx context.Context, limit int) ([]ScanRecord, error) {
	query := `SELECT id, root, created_at, entry_count, group_count, warn_count, duration_ms
              FROM scans ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()

	var records []ScanRecord
	for rows.Next() {
		record, err := scanRecordFromRow(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// LoadGroups returns the duplicate groups persisted for one scan.
func (s *Store) LoadGroups(ctx context.Context, scanID string) ([]dupes.Group, error) {
	var exists int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM scans WHERE id = ?", scanID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check scan %s: %w", scanID, err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", ErrScanNotFound, scanID)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT group_key, members_json FROM scan_groups WHERE scan_id = ? ORDER BY position", scanID)
	if err != nil {
		return nil, fmt.Errorf("load groups for %s: %w", scanID, err)
	}
	defer rows.Close()

	var groups []dupes.Group
	for rows.Next() {
		var key, membersJSON string
		if err := rows.Scan(&key, &membersJSON); err != nil {
			return nil, fmt.Errorf("scan group row: %w", err)
		}
		var members []dupes.Member
		if err := json.Unmarshal([]byte(membersJSON), &members); err != nil {
			return nil, fmt.Errorf("decode group %q: %w", key, err)
		}
		groups = append(groups, dupes.Group{Key: key, Members: members})
	}
	return groups, rows.Err()
}

func scanRecordFromRow(rows *sql.Rows) (ScanRecord, error) {
	var record ScanRecord
	var createdAt string
	var durationMs int64
	if err := rows.Scan(&record.ID, &record.Root, &createdAt, &record.EntryCount,
		&record.GroupCount, &record.WarnCount, &durationMs); err != nil {
		return ScanRecord{}, fmt.Errorf("scan row: %w", err)
	}
	parsed, err := time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return ScanRecord{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	record.CreatedAt = parsed
	record.Duration = time.Duration(durationMs) * time.Millisecond
	return record, nil
}
