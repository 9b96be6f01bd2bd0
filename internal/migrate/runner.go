package migrate

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Runner tracks which migrations have been applied to one database and
// applies or rolls back individual migrations transactionally.
type Runner struct {
	db *sqlx.DB
}

// NewRunner creates a runner for the given database, creating the
// applied-migrations bookkeeping table if it does not exist yet.
func NewRunner(db *sqlx.DB) (*Runner, error) {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS migrations (name TEXT NOT NULL UNIQUE)`); err != nil {
		return nil, fmt.Errorf("create migrations table: %w", err)
	}
	return &Runner{db: db}, nil
}

// Applied returns the set of applied migration names, read fresh from
// storage on every call. No in-memory cache: the table may change under us
// through an external SQL shell.
func (r *Runner) Applied(ctx context.Context) (map[string]bool, error) {
	var names []string
	if err := r.db.SelectContext(ctx, &names, `SELECT name FROM migrations`); err != nil {
		return nil, fmt.Errorf("read applied migrations: %w", err)
	}
	applied := make(map[string]bool, len(names))
	for _, name := range names {
		applied[name] = true
	}
	return applied, nil
}

// Version returns the schema-version counter (PRAGMA user_version).
func (r *Runner) Version(ctx context.Context) (int, error) {
	var version int
	if err := r.db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return 0, fmt.Errorf("read user_version: %w", err)
	}
	return version, nil
}

// SetVersion sets the schema-version counter. Used by the first-run
// bootstrap: a database with no migration bookkeeping is version 0, not
// "unknown".
func (r *Runner) SetVersion(ctx context.Context, version int) error {
	// PRAGMA does not accept bound parameters.
	if _, err := r.db.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, version)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

// Apply runs the migration's forward operation, records it as applied, and
// bumps the version counter when flagged. All of it happens in one
// transaction: a failed forward operation leaves no trace.
func (r *Runner) Apply(ctx context.Context, m Migration) error {
	if m.Apply == nil {
		return &DefinitionError{Name: m.Name, Op: "apply"}
	}
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := m.Apply(tx); err != nil {
			return fmt.Errorf("apply %s: %w", m.Name, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO migrations (name) VALUES (?)`, m.Name); err != nil {
			return fmt.Errorf("record %s: %w", m.Name, err)
		}
		if m.BumpVersion {
			return r.shiftVersion(ctx, tx, +1)
		}
		return nil
	})
}

// Rollback runs the migration's reverse operation, removes the applied
// record, and decrements the version counter when flagged. Symmetric to
// Apply, same transaction scope.
func (r *Runner) Rollback(ctx context.Context, m Migration) error {
	if m.Rollback == nil {
		return &DefinitionError{Name: m.Name, Op: "rollback"}
	}
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if err := m.Rollback(tx); err != nil {
			return fmt.Errorf("rollback %s: %w", m.Name, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM migrations WHERE name = ?`, m.Name); err != nil {
			return fmt.Errorf("unrecord %s: %w", m.Name, err)
		}
		if m.BumpVersion {
			return r.shiftVersion(ctx, tx, -1)
		}
		return nil
	})
}

// inTx runs fn inside a transaction, committing on success.
func (r *Runner) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration tx: %w", err)
	}
	return nil
}

// shiftVersion changes PRAGMA user_version by delta within the transaction.
// user_version lives in the database header and participates in the
// enclosing transaction, so a failed migration never moves the counter.
func (r *Runner) shiftVersion(ctx context.Context, tx *sqlx.Tx, delta int) error {
	var version int
	if err := tx.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, version+delta)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

// Up brings the database fully up to date: bootstrap the version counter
// on first run, then apply every outstanding migration in registry order.
// Returns the names applied during this call. The history store must not
// be used before Up has completed.
func Up(ctx context.Context, r *Runner, reg *Registry) ([]string, error) {
	applied, err := r.Applied(ctx)
	if err != nil {
		return nil, err
	}
	if len(applied) == 0 {
		if err := r.SetVersion(ctx, 0); err != nil {
			return nil, err
		}
	}

	order, err := reg.Sort()
	if err != nil {
		return nil, err
	}

	var ran []string
	for _, name := range order {
		if applied[name] {
			continue
		}
		m, ok := reg.Get(name)
		if !ok {
			return ran, fmt.Errorf("migration %q is a declared dependency but is not registered", name)
		}
		if err := r.Apply(ctx, m); err != nil {
			return ran, err
		}
		ran = append(ran, name)
	}
	return ran, nil
}
