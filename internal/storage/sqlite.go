// Package storage provides SQLite-based persistence for saved clans.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-clangen/internal/clan"
)

// ErrClanNotFound is returned when a named clan has no save.
var ErrClanNotFound = errors.New("storage: clan not found")

// Store manages the SQLite database connection for clan saves.
type Store struct {
	db *sql.DB
}

// ClanSummary is one row of the saved-clan list.
type ClanSummary struct {
	Name       string
	Moons      int
	Living     int
	CreatedAt  time.Time
	LastLoaded time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		PRAGMA foreign_keys = ON;

		CREATE TABLE IF NOT EXISTS clans (
			name TEXT PRIMARY KEY,
			moons INTEGER NOT NULL DEFAULT 0,
			leader_id TEXT NOT NULL DEFAULT '',
			deputy_id TEXT NOT NULL DEFAULT '',
			medicine_id TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			last_loaded INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS cats (
			id TEXT PRIMARY KEY,
			clan_name TEXT NOT NULL REFERENCES clans(name) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			prefix TEXT NOT NULL,
			suffix TEXT NOT NULL,
			status TEXT NOT NULL,
			moons INTEGER NOT NULL,
			gender TEXT NOT NULL,
			pelt TEXT NOT NULL,
			dead INTEGER NOT NULL DEFAULT 0,
			mentor_id TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_cats_clan ON cats(clan_name, position);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveClan writes the clan and all of its cats, replacing any previous save
// with the same name.
func (s *Store) SaveClan(c *clan.Clan) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	created := c.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	_, err = tx.Exec(
		`INSERT INTO clans (name, moons, leader_id, deputy_id, medicine_id, created_at, last_loaded)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   moons = excluded.moons,
		   leader_id = excluded.leader_id,
		   deputy_id = excluded.deputy_id,
		   medicine_id = excluded.medicine_id`,
		c.Name, c.Moons, c.LeaderID, c.DeputyID, c.MedicineID,
		created.UTC().Format(timeLayout), time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save clan %s: %w", c.Name, err)
	}

	if _, err := tx.Exec("DELETE FROM cats WHERE clan_name = ?", c.Name); err != nil {
		return fmt.Errorf("storage: cannot clear cats of %s: %w", c.Name, err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO cats (id, clan_name, position, prefix, suffix, status, moons, gender, pelt, dead, mentor_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare cat insert: %w", err)
	}
	defer stmt.Close()

	for i, cat := range c.Cats {
		if _, err := stmt.Exec(
			cat.ID, c.Name, i, cat.Prefix, cat.Suffix, string(cat.Status),
			cat.Moons, cat.Gender, cat.Pelt, cat.Dead, cat.MentorID,
		); err != nil {
			return fmt.Errorf("storage: cannot save cat %s: %w", cat.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clan %s: %w", c.Name, err)
	}
	return nil
}

// LoadClan reads a saved clan by name and marks it as the most recently loaded.
// Returns ErrClanNotFound if no save exists.
func (s *Store) LoadClan(name string) (*clan.Clan, error) {
	c := &clan.Clan{Name: name}
	var createdAt any

	err := s.db.QueryRow(
		`SELECT moons, leader_id, deputy_id, medicine_id, created_at
		 FROM clans WHERE name = ?`,
		name,
	).Scan(&c.Moons, &c.LeaderID, &c.DeputyID, &c.MedicineID, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrClanNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query clan %s: %w", name, err)
	}
	c.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		`SELECT id, prefix, suffix, status, moons, gender, pelt, dead, mentor_id
		 FROM cats WHERE clan_name = ? ORDER BY position`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query cats of %s: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var cat clan.Cat
		var status string
		if err := rows.Scan(
			&cat.ID, &cat.Prefix, &cat.Suffix, &status, &cat.Moons,
			&cat.Gender, &cat.Pelt, &cat.Dead, &cat.MentorID,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan cat row: %w", err)
		}
		cat.Status = clan.Status(status)
		c.Cats = append(c.Cats, &cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	if _, err := s.db.Exec(
		"UPDATE clans SET last_loaded = ? WHERE name = ?",
		time.Now().UnixNano(), name,
	); err != nil {
		return nil, fmt.Errorf("storage: cannot touch clan %s: %w", name, err)
	}

	return c, nil
}

// ListClans returns every saved clan, most recently loaded first.
func (s *Store) ListClans() ([]ClanSummary, error) {
	rows, err := s.db.Query(
		`SELECT c.name, c.moons, c.created_at, c.last_loaded,
		        COALESCE(SUM(CASE WHEN k.dead = 0 THEN 1 ELSE 0 END), 0)
		 FROM clans c
		 LEFT JOIN cats k ON k.clan_name = c.name
		 GROUP BY c.name
		 ORDER BY c.last_loaded DESC, c.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list clans: %w", err)
	}
	defer rows.Close()

	var out []ClanSummary
	for rows.Next() {
		var sum ClanSummary
		var createdAt any
		var lastLoaded int64
		if err := rows.Scan(&sum.Name, &sum.Moons, &createdAt, &lastLoaded, &sum.Living); err != nil {
			return nil, fmt.Errorf("storage: cannot scan clan row: %w", err)
		}
		sum.CreatedAt = parseTime(createdAt)
		if lastLoaded > 0 {
			sum.LastLoaded = time.Unix(0, lastLoaded)
		}
		out = append(out, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// DeleteClan removes a saved clan and its cats.
func (s *Store) DeleteClan(name string) error {
	res, err := s.db.Exec("DELETE FROM clans WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete clan %s: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrClanNotFound, name)
	}
	// Cascades need foreign_keys on the same connection, so clear cats explicitly.
	if _, err := s.db.Exec("DELETE FROM cats WHERE clan_name = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete cats of %s: %w", name, err)
	}
	return nil
}

const timeLayout = "2006-01-02 15:04:05"

// parseTime handles both time.Time and string values returned by the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
