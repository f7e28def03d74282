package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/vass-cornelius/kensho/pkg/model"
	"github.com/vass-cornelius/kensho/pkg/repository/migrations"
)

// Client implements Repository backed by a local SQLite database. The
// entries table is append-only: revisions accumulate and are resolved at
// read time.
type Client struct {
	db   *sql.DB
	path string
}

// New opens the journal database under dataDir, creating the directory and
// schema as needed.
func New(dataDir string) (*Client, error) {
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, goerr.Wrap(err, "failed to create journal directory", goerr.V("dir", dataDir))
	}

	dbPath := filepath.Join(dataDir, "journal.db")

	// WAL mode so a crashed capture never corrupts past entries
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open journal database", goerr.V("path", dbPath))
	}

	c := &Client{db: db, path: dbPath}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return c, nil
}

// Close closes the database connection.
func (c *Client) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Client) Path() string {
	return c.path
}

// migrate applies all pending migrations from the embedded filesystem.
func (c *Client) migrate() error {
	if _, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`); err != nil {
		return goerr.Wrap(err, "failed to create schema_migrations table")
	}

	var current int
	row := c.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&current); err != nil {
		return goerr.Wrap(err, "failed to read schema version")
	}

	files, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		return goerr.Wrap(err, "failed to read migrations")
	}

	var names []string
	for _, f := range files {
		if strings.HasSuffix(f.Name(), ".up.sql") {
			names = append(names, f.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		// Extract version number (e.g., "001_create_entries.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= current {
			continue
		}

		content, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return goerr.Wrap(err, "failed to read migration", goerr.V("name", name))
		}
		if _, err := c.db.Exec(string(content)); err != nil {
			return goerr.Wrap(err, "failed to execute migration", goerr.V("name", name))
		}
		if _, err := c.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return goerr.Wrap(err, "failed to record migration", goerr.V("name", name))
		}
	}

	return nil
}

// PutEntry appends an entry revision. INSERT only, no UPDATE or DELETE.
func (c *Client) PutEntry(ctx context.Context, entry *model.Entry) error {
	answers, err := json.Marshal(entry.Answers)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal answers", goerr.V("id", entry.ID))
	}

	// written_at is stored as unix nanoseconds: RFC3339 text does not sort
	// chronologically across fractional-second precision
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO entries (id, date, kind, answers, written_at)
		VALUES (?, ?, ?, ?, ?)
	`, string(entry.ID), entry.Date.String(), string(entry.Kind), string(answers), entry.WrittenAt.UnixNano())
	if err != nil {
		return goerr.Wrap(model.ErrStoreWrite, err.Error(), goerr.V("id", entry.ID))
	}

	return nil
}

// EntriesInRange returns the full revision history within the period,
// ordered by date, then written_at, then insertion order.
func (c *Client) EntriesInRange(ctx context.Context, period model.Period) ([]*model.Entry, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, date, kind, answers, written_at
		FROM entries
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, written_at ASC, seq ASC
	`, period.Start.String(), period.End.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query entries")
	}
	defer rows.Close()

	var entries []*model.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate entries")
	}

	return entries, nil
}

func scanEntry(rows *sql.Rows) (*model.Entry, error) {
	var (
		id, date, kind, answers string
		writtenAt               int64
	)
	if err := rows.Scan(&id, &date, &kind, &answers, &writtenAt); err != nil {
		return nil, goerr.Wrap(err, "failed to scan entry")
	}

	d, err := civil.ParseDate(date)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid date in store", goerr.V("date", date))
	}

	entry := &model.Entry{
		ID:        model.EntryID(id),
		Date:      d,
		Kind:      model.EntryKind(kind),
		WrittenAt: time.Unix(0, writtenAt),
	}
	if err := json.Unmarshal([]byte(answers), &entry.Answers); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal answers", goerr.V("id", id))
	}

	return entry, nil
}
