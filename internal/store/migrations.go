package store

import (
	"database/sql"
	"embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// schemaStep is one numbered SQL file from migrations/.
type schemaStep struct {
	version int
	sql     string
}

// migrate brings the entries schema up to date. The highest applied step is
// kept in SQLite's user_version pragma.
func migrate(db *sql.DB) error {
	steps, err := schemaSteps()
	if err != nil {
		return err
	}

	var current int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, step := range steps {
		if step.version <= current {
			continue
		}
		if err := applyStep(db, step); err != nil {
			return err
		}
	}

	return nil
}

func schemaSteps() ([]schemaStep, error) {
	files, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	steps := make([]schemaStep, 0, len(files))
	for _, f := range files {
		prefix, _, ok := strings.Cut(f.Name(), "_")
		if !ok || !strings.HasSuffix(f.Name(), ".sql") {
			return nil, fmt.Errorf("invalid migration filename %q", f.Name())
		}
		version, err := strconv.Atoi(prefix)
		if err != nil || version <= 0 {
			return nil, fmt.Errorf("invalid migration version in %q", f.Name())
		}

		content, err := migrationsFS.ReadFile("migrations/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", f.Name(), err)
		}
		steps = append(steps, schemaStep{version: version, sql: string(content)})
	}

	sort.Slice(steps, func(i, j int) bool { return steps[i].version < steps[j].version })
	for i := 1; i < len(steps); i++ {
		if steps[i].version == steps[i-1].version {
			return nil, fmt.Errorf("duplicate migration version: %d", steps[i].version)
		}
	}

	return steps, nil
}

func applyStep(db *sql.DB, step schemaStep) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin migration %d: %w", step.version, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(step.sql); err != nil {
		return fmt.Errorf("failed to apply migration %d: %w", step.version, err)
	}
	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, step.version)); err != nil {
		return fmt.Errorf("failed to record migration %d: %w", step.version, err)
	}

	return tx.Commit()
}
