package store

import (
	_ "embed"

	"github.com/jmoiron/sqlx"

	"github.com/duiker-sh/duiker/internal/migrate"
)

//go:embed migrations/0001_initial.sql
var initialSchemaSQL string

// Migration names are stable identifiers recorded in the migrations table;
// never rename one after a release.
const (
	migrationInitial      = "20170428T163032Z_initial"
	migrationTimestampIdx = "20170612T201500Z_history_timestamp_idx"
)

// Migrations returns the registry of all schema migrations for the history
// database, in registration order. The migration runner derives the
// application order from the declared dependencies.
func Migrations() *migrate.Registry {
	reg := migrate.NewRegistry()

	reg.MustRegister(migrate.Migration{
		Name:        migrationInitial,
		BumpVersion: true,
		Apply: func(tx *sqlx.Tx) error {
			_, err := tx.Exec(initialSchemaSQL)
			return err
		},
		Rollback: func(tx *sqlx.Tx) error {
			_, err := tx.Exec(`
				DROP TABLE IF EXISTS fts_history_terms;
				DROP TABLE IF EXISTS fts_history;
				DROP TABLE IF EXISTS history;
			`)
			return err
		},
	})

	reg.MustRegister(migrate.Migration{
		Name:    migrationTimestampIdx,
		Depends: []string{migrationInitial},
		Apply: func(tx *sqlx.Tx) error {
			_, err := tx.Exec(`CREATE INDEX IF NOT EXISTS idx_history_timestamp ON history (timestamp)`)
			return err
		},
		Rollback: func(tx *sqlx.Tx) error {
			_, err := tx.Exec(`DROP INDEX IF EXISTS idx_history_timestamp`)
			return err
		},
	})

	return reg
}
