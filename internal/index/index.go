package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	_ "github.com/marcboeker/go-duckdb"

	"github.com/jcdickinson/apidocs/internal/docs"
)

// DefaultLimit caps search results when the caller doesn't.
const DefaultLimit = 20

const summaryLen = 200

// DB is a searchable index of every item in a project.
type DB struct {
	conn *sql.DB
}

// New opens the index at dbPath, or an in-memory index when dbPath is empty.
func New(dbPath string) (*DB, error) {
	if dbPath != "" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	conn, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return db, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS items (
			path TEXT NOT NULL,
			tab TEXT NOT NULL,
			category TEXT NOT NULL,
			subcategory TEXT NOT NULL,
			name TEXT NOT NULL,
			display_name TEXT NOT NULL,
			is_method BOOLEAN NOT NULL,
			realm TEXT NOT NULL,
			signature TEXT NOT NULL,
			summary TEXT NOT NULL
		)`,
	}

	for _, q := range queries {
		if _, err := db.conn.Exec(q); err != nil {
			return fmt.Errorf("executing %q: %w", q, err)
		}
	}
	return nil
}

// Result is one indexed item.
type Result struct {
	Path        string
	Tab         string
	Category    string
	Subcategory string
	Name        string
	DisplayName string
	IsMethod    bool
	Realm       string
	Signature   string
	Summary     string
}

// Build replaces the index contents with every item of project. It
// returns the number of items indexed.
func (db *DB) Build(ctx context.Context, project docs.Project) (int, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return 0, fmt.Errorf("clearing items: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO items
		(path, tab, category, subcategory, name, display_name, is_method, realm, signature, summary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	var insertErr error
	project.Walk(func(e docs.Entry) bool {
		_, insertErr = stmt.ExecContext(ctx,
			e.Path(), e.Tab, e.Category, e.Subcategory,
			e.Item.Name, e.Item.DisplayName(), e.Item.IsMethod(), e.Item.Realm,
			docs.FuncSignature(e.Item, e.Category), Summary(e.Item.Description),
		)
		if insertErr != nil {
			insertErr = fmt.Errorf("inserting %s: %w", e.Path(), insertErr)
			return false
		}
		count++
		return true
	})
	if insertErr != nil {
		return 0, insertErr
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing index: %w", err)
	}
	return count, nil
}

// Search matches query case-insensitively against item names and
// summaries. Exact display-name matches rank first, then methods, then
// path order. limit <= 0 means DefaultLimit.
func (db *DB) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT path, tab, category, subcategory, name, display_name, is_method, realm, signature, summary
		FROM items
		WHERE contains(lower(name), ?) OR contains(lower(display_name), ?) OR contains(lower(summary), ?)
		ORDER BY (lower(display_name) = ?) DESC, is_method DESC, path
		LIMIT ?`,
		q, q, q, q, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Path, &r.Tab, &r.Category, &r.Subcategory, &r.Name,
			&r.DisplayName, &r.IsMethod, &r.Realm, &r.Signature, &r.Summary); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Count returns the number of indexed items.
func (db *DB) Count(ctx context.Context) (int, error) {
	var n int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting items: %w", err)
	}
	return n, nil
}

// Summary is the first paragraph of a description, cut to a short
// single line.
func Summary(description string) string {
	s := strings.TrimSpace(description)
	if i := strings.Index(s, "\n\n"); i >= 0 {
		s = s[:i]
	}
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= summaryLen {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:summaryLen])) + "…"
}
