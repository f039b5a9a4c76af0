// Package migrations applies the embedded PostgreSQL schema.
package migrations

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"github.com/docaid/DocAid-BookingService/pkg/dbmetrics"
)

//go:embed sql/*.sql
var embedded embed.FS

const migrationsTable = "schema_migrations"

var (
	ErrLoad  = errors.New("migrations: failed to load migrations")
	ErrApply = errors.New("migrations: failed to apply migration")
)

// Migration одна миграция из файла вида 001_name.sql
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Transactor выполняет fn в транзакции
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migrator применяет миграции по порядку версий, каждую в своей транзакции
type Migrator struct {
	db     dbmetrics.DBExecutor
	tx     Transactor
	fsys   fs.FS
	logger Logger
}

// Embedded возвращает встроенные в бинарник миграции
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewMigrator создаёт мигратор. Файлы *.sql читаются из корня fsys.
func NewMigrator(db dbmetrics.DBExecutor, tx Transactor, fsys fs.FS, logger Logger) *Migrator {
	return &Migrator{db: db, tx: tx, fsys: fsys, logger: logger}
}

// Load читает миграции и сортирует их по версии.
// Файлы без числового префикса пропускаются.
func (m *Migrator) Load() ([]Migration, error) {
	entries, err := fs.ReadDir(m.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: read dir: %v", ErrLoad, err)
	}

	migrations := make([]Migration, 0, len(entries))
	seen := make(map[int]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		prefix, _, found := strings.Cut(name, "_")
		if !found {
			continue
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}
		if other, dup := seen[version]; dup {
			return nil, fmt.Errorf("%w: version %d used by %s and %s", ErrLoad, version, other, name)
		}
		seen[version] = name

		content, err := fs.ReadFile(m.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrLoad, name, err)
		}

		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(content)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// Up применяет все ещё не применённые миграции и возвращает их количество
func (m *Migrator) Up(ctx context.Context) (int, error) {
	migrations, err := m.Load()
	if err != nil {
		return 0, err
	}

	if _, err := m.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationsTable+` (
    version INTEGER PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`); err != nil {
		return 0, fmt.Errorf("%w: create %s: %v", ErrApply, migrationsTable, err)
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, migration := range migrations {
		if applied[migration.Version] {
			continue
		}

		err := m.tx.Do(ctx, func(ctx context.Context) error {
			executor := dbmetrics.GetExecutor(ctx, m.db)
			if _, err := executor.ExecContext(ctx, migration.SQL); err != nil {
				return err
			}
			_, err := executor.ExecContext(ctx,
				`INSERT INTO `+migrationsTable+` (version, name) VALUES ($1, $2)`,
				migration.Version, migration.Name)
			return err
		})
		if err != nil {
			return count, fmt.Errorf("%w: %s: %v", ErrApply, migration.Name, err)
		}

		m.logger.Info("applied migration %s", migration.Name)
		count++
	}

	return count, nil
}

func (m *Migrator) appliedVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT version FROM `+migrationsTable)
	if err != nil {
		return nil, fmt.Errorf("%w: query applied versions: %v", ErrApply, err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: scan version: %v", ErrApply, err)
		}
		applied[v] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate versions: %v", ErrApply, err)
	}

	return applied, nil
}
