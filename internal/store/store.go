package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/sferro/chatlens/internal/analyze"
)

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA busy_timeout = 5000;

CREATE TABLE IF NOT EXISTS analyses (
    id             TEXT PRIMARY KEY,
    file_path      TEXT NOT NULL,
    file_name      TEXT NOT NULL,
    mtime          INTEGER NOT NULL DEFAULT 0,
    size           INTEGER NOT NULL DEFAULT 0,
    analyzed_at    TEXT NOT NULL DEFAULT '',
    total_messages INTEGER NOT NULL DEFAULT 0,
    participants   TEXT NOT NULL DEFAULT '',
    data           TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS analyses_file_path ON analyses(file_path);
`

type DB struct {
	db *sql.DB
}

func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) Raw() *sql.DB {
	return d.db
}

// Analysis is one stored snapshot's metadata row.
type Analysis struct {
	ID            string
	FilePath      string
	FileName      string
	Mtime         int64
	Size          int64
	AnalyzedAt    string
	TotalMessages int
	Participants  []string
}

// Put stores a fresh analysis snapshot for filePath, replacing any previous
// snapshot of the same file. Returns the new snapshot's id.
func (d *DB) Put(filePath string, mtime, size int64, data *analyze.ChatData) (string, error) {
	blob, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode analysis: %w", err)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM analyses WHERE file_path = ?", filePath); err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = tx.Exec(
		`INSERT INTO analyses (id, file_path, file_name, mtime, size, analyzed_at, total_messages, participants, data)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		filePath,
		filepath.Base(filePath),
		mtime,
		size,
		time.Now().UTC().Format("2006-01-02T15:04:05Z"),
		data.TotalMessages,
		strings.Join(data.Participants, ", "),
		string(blob),
	)
	if err != nil {
		return "", err
	}

	return id, tx.Commit()
}

// Lookup returns the stored snapshot for filePath when the file is
// unchanged (same mtime and size), or nil when a re-analysis is needed.
func (d *DB) Lookup(filePath string, mtime, size int64) (*analyze.ChatData, string, error) {
	var id, blob string
	err := d.db.QueryRow(
		"SELECT id, data FROM analyses WHERE file_path = ? AND mtime = ? AND size = ?",
		filePath, mtime, size,
	).Scan(&id, &blob)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}

	var data analyze.ChatData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return nil, "", fmt.Errorf("decode analysis %s: %w", id, err)
	}
	return &data, id, nil
}

// Get returns the metadata row and snapshot for an id; nils when not found.
func (d *DB) Get(id string) (*Analysis, *analyze.ChatData, error) {
	var a Analysis
	var participants, blob string
	err := d.db.QueryRow(
		`SELECT id, file_path, file_name, mtime, size, analyzed_at, total_messages, participants, data
		 FROM analyses WHERE id = ?`, id,
	).Scan(&a.ID, &a.FilePath, &a.FileName, &a.Mtime, &a.Size, &a.AnalyzedAt, &a.TotalMessages, &participants, &blob)
	if err == sql.ErrNoRows {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	a.Participants = splitParticipants(participants)

	var data analyze.ChatData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return nil, nil, fmt.Errorf("decode analysis %s: %w", id, err)
	}
	return &a, &data, nil
}

// List returns snapshot metadata newest first, capped at limit (0 = all).
func (d *DB) List(limit int) ([]Analysis, error) {
	q := "SELECT id, file_path, file_name, mtime, size, analyzed_at, total_messages, participants FROM analyses ORDER BY analyzed_at DESC"
	var args []interface{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		var a Analysis
		var participants string
		if err := rows.Scan(&a.ID, &a.FilePath, &a.FileName, &a.Mtime, &a.Size, &a.AnalyzedAt, &a.TotalMessages, &participants); err != nil {
			return nil, err
		}
		a.Participants = splitParticipants(participants)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (d *DB) Delete(id string) error {
	_, err := d.db.Exec("DELETE FROM analyses WHERE id = ?", id)
	return err
}

func (d *DB) Count() (int, error) {
	var n int
	err := d.db.QueryRow("SELECT COUNT(*) FROM analyses").Scan(&n)
	return n, err
}

func splitParticipants(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ", ")
}
