package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"slices"
	"strconv"

	"github.com/colonyops/hrms/internal/core/logging"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Schema changes are forward only. The applied version lives in sqlite's
// user_version header field, so there is no bookkeeping table.

type migration struct {
	version int
	name    string
	sql     string
}

var migrationName = regexp.MustCompile(`^(\d{4})_([a-z0-9_]+)\.sql$`)

func parseMigrationName(file string) (int, string, error) {
	m := migrationName.FindStringSubmatch(file)
	if m == nil {
		return 0, "", fmt.Errorf("migration %q: want NNNN_name.sql", file)
	}
	version, _ := strconv.Atoi(m[1])
	if version == 0 {
		return 0, "", fmt.Errorf("migration %q: versions start at 0001", file)
	}
	return version, m[2], nil
}

// loadMigrations reads src and checks the versions run 1..n without gaps.
func loadMigrations(src fs.FS) ([]migration, error) {
	files, err := fs.Glob(src, "migrations/*.sql")
	if err != nil {
		return nil, err
	}

	out := make([]migration, 0, len(files))
	for _, file := range files {
		version, name, err := parseMigrationName(path.Base(file))
		if err != nil {
			return nil, err
		}
		body, err := fs.ReadFile(src, file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		out = append(out, migration{version: version, name: name, sql: string(body)})
	}

	slices.SortFunc(out, func(a, b migration) int { return a.version - b.version })
	for i, m := range out {
		if m.version != i+1 {
			return nil, fmt.Errorf("migration %04d_%s: expected version %04d", m.version, m.name, i+1)
		}
	}
	return out, nil
}

func userVersion(ctx context.Context, q interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
},
) (int, error) {
	var v int
	if err := q.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return v, nil
}

// migrate applies every migration newer than the database's version, each
// in its own transaction together with the version bump. A database from a
// newer build is rejected rather than silently downgraded.
func migrate(ctx context.Context, conn *sql.DB, src fs.FS) error {
	migrations, err := loadMigrations(src)
	if err != nil {
		return err
	}

	current, err := userVersion(ctx, conn)
	if err != nil {
		return err
	}
	if current > len(migrations) {
		return fmt.Errorf("database schema version %d is newer than this build (%d)", current, len(migrations))
	}

	logger := logging.Component("db")
	for _, m := range migrations[current:] {
		tx, err := conn.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("migration %04d: %w", m.version, err)
		}
		if _, err := tx.ExecContext(ctx, m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %04d_%s: %w", m.version, m.name, err)
		}
		// PRAGMA takes no bound parameters; version is an int we parsed.
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %04d: set version: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migration %04d: commit: %w", m.version, err)
		}
		logger.Debug().Int("version", m.version).Str("name", m.name).Msg("schema migrated")
	}
	return nil
}

// SchemaVersion returns the number of applied migrations.
func (db *DB) SchemaVersion(ctx context.Context) (int, error) {
	return userVersion(ctx, db.conn)
}
