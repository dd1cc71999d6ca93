// Package migrations applies the embedded schema in filename order, recording
// each file in migrations_history so reruns are no-ops. The sqlite store lives
// here; dialects plug in through History.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed sql/*.sql
var sqliteFS embed.FS

// History is the dialect-specific half of a run.
type History interface {
	Ensure(ctx context.Context) error
	Applied(ctx context.Context, name string) (bool, error)
	Exec(ctx context.Context, stmt string) error
	Record(ctx context.Context, name string) error
}

// Run applies every .sql file under dir of fsys not yet in h and returns the
// names it applied.
func Run(ctx context.Context, h History, fsys fs.FS, dir string) ([]string, error) {
	if err := h.Ensure(ctx); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	slices.Sort(names)

	var ran []string
	for _, name := range names {
		applied, err := h.Applied(ctx, name)
		if err != nil {
			return ran, err
		}
		if applied {
			continue
		}

		content, err := fs.ReadFile(fsys, dir+"/"+name)
		if err != nil {
			return ran, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		for _, stmt := range Statements(string(content)) {
			if err := h.Exec(ctx, stmt); err != nil {
				return ran, fmt.Errorf("failed to execute migration %s: %w", name, err)
			}
		}
		if err := h.Record(ctx, name); err != nil {
			return ran, err
		}
		ran = append(ran, name)
	}
	return ran, nil
}

// Statements splits a migration file on semicolons, dropping "--" comment
// lines and empty statements.
func Statements(content string) []string {
	var b strings.Builder
	for line := range strings.Lines(content) {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
	}

	var out []string
	for stmt := range strings.SplitSeq(b.String(), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

func Apply(ctx context.Context, db *sql.DB) error {
	_, err := Run(ctx, sqliteHistory{db: db}, sqliteFS, "sql")
	return err
}

// Applied lists the recorded migration names in application order.
func Applied(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM migrations_history ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing migrations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("listing migrations: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

type sqliteHistory struct {
	db *sql.DB
}

func (h sqliteHistory) Ensure(ctx context.Context) error {
	_, err := h.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS migrations_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating migrations history table: %w", err)
	}
	return nil
}

func (h sqliteHistory) Applied(ctx context.Context, name string) (bool, error) {
	var count int
	err := h.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations_history WHERE name = ?", name).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking if migration applied: %w", err)
	}
	return count > 0, nil
}

func (h sqliteHistory) Exec(ctx context.Context, stmt string) error {
	_, err := h.db.ExecContext(ctx, stmt)
	return err
}

func (h sqliteHistory) Record(ctx context.Context, name string) error {
	if _, err := h.db.ExecContext(ctx, "INSERT INTO migrations_history (name) VALUES (?)", name); err != nil {
		return fmt.Errorf("recording migration: %w", err)
	}
	return nil
}
