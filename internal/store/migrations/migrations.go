package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/firehall/personnel-agent/internal/store"
	srvErrors "github.com/firehall/personnel-agent/pkg/errors"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Run brings the database schema up to date. It creates the collection
// tables and secondary indexes declared by the store Registry, then applies
// any embedded SQL migrations not yet recorded in schema_migrations.
//
// Run is idempotent and non-destructive: existing tables and indexes are
// left untouched, and each versioned migration is applied at most once.
func Run(ctx context.Context, db *sql.DB) error {
	if err := ensureVersionTable(ctx, db); err != nil {
		return srvErrors.NewStorageUnavailableError(err)
	}
	if err := ensureCollections(ctx, db); err != nil {
		return srvErrors.NewStorageUnavailableError(err)
	}
	if err := applySQLMigrations(ctx, db); err != nil {
		return srvErrors.NewStorageUnavailableError(err)
	}
	return nil
}

func ensureVersionTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	return err
}

// ensureCollections materializes the record collections. DDL is derived
// from the Registry so adding a collection or an indexed field only touches
// the registry declaration.
func ensureCollections(ctx context.Context, db *sql.DB) error {
	for _, c := range store.Registry {
		_, err := db.ExecContext(ctx, fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id   INTEGER PRIMARY KEY AUTOINCREMENT,
				data TEXT NOT NULL
			)`, c.Name))
		if err != nil {
			return fmt.Errorf("create collection %s: %w", c.Name, err)
		}
		for _, field := range c.Indexes {
			_, err := db.ExecContext(ctx, fmt.Sprintf(
				`CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s (json_extract(data, '$.%s'))`,
				c.Name, field, c.Name, field))
			if err != nil {
				return fmt.Errorf("create index on %s.%s: %w", c.Name, field, err)
			}
		}
	}
	return nil
}

type migration struct {
	version int
	name    string
	path    string
}

func applySQLMigrations(ctx context.Context, db *sql.DB) error {
	migs, err := listMigrations()
	if err != nil {
		return err
	}
	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}
	for _, mig := range migs {
		if applied[mig.version] {
			continue
		}
		if err := applyMigration(ctx, db, mig); err != nil {
			return fmt.Errorf("apply migration %s: %w", mig.name, err)
		}
	}
	return nil
}

func listMigrations() ([]migration, error) {
	entries, err := migrationFiles.ReadDir("sql")
	if err != nil {
		return nil, err
	}
	migs := make([]migration, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}
		version, ok := parseVersion(name)
		if !ok {
			return nil, fmt.Errorf("migration %q has no numeric version prefix", name)
		}
		migs = append(migs, migration{version: version, name: name, path: "sql/" + name})
	}
	sort.Slice(migs, func(i, j int) bool { return migs[i].version < migs[j].version })
	return migs, nil
}

func parseVersion(name string) (int, bool) {
	prefix, _, found := strings.Cut(name, "_")
	if !found {
		return 0, false
	}
	version, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, false
	}
	return version, true
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

// applyMigration runs one migration file and records it in a single
// transaction, so a failed upgrade leaves no half-applied version behind.
func applyMigration(ctx context.Context, db *sql.DB, mig migration) error {
	script, err := migrationFiles.ReadFile(mig.path)
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, string(script)); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`,
		mig.version, mig.name); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
