// Package migrate applies schema migrations to the history database in
// dependency order.
//
// Migrations are compiled into the binary: each one registers a stable
// name, the names it depends on, and forward/reverse operations that run
// inside a transaction. The registry orders them with a deterministic
// topological sort; the runner records applied names in a bookkeeping
// table and maintains the schema-version counter in PRAGMA user_version.
package migrate

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/duiker-sh/duiker/internal/dag"
)

// Migration is one named schema change.
//
// Name must be unique and stable across releases; the applied-migrations
// table stores it verbatim. Depends lists the names of migrations that
// must run first. Apply is required; Rollback is optional. BumpVersion
// marks migrations that count toward the schema-version counter.
type Migration struct {
	Name        string
	Depends     []string
	BumpVersion bool

	Apply    func(tx *sqlx.Tx) error
	Rollback func(tx *sqlx.Tx) error
}

// Registry holds the migrations compiled into the binary, in registration
// order.
type Registry struct {
	byName map[string]Migration
	order  []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Migration)}
}

// Register adds a migration. Registering two migrations with the same name
// is a programming error and fails immediately.
func (r *Registry) Register(m Migration) error {
	if m.Name == "" {
		return fmt.Errorf("register migration: name must not be empty")
	}
	if _, ok := r.byName[m.Name]; ok {
		return fmt.Errorf("register migration: duplicate name %q", m.Name)
	}
	r.byName[m.Name] = m
	r.order = append(r.order, m.Name)
	return nil
}

// MustRegister is Register for init-time registration lists.
func (r *Registry) MustRegister(m Migration) {
	if err := r.Register(m); err != nil {
		panic(err)
	}
}

// Get returns a registered migration by name.
func (r *Registry) Get(name string) (Migration, bool) {
	m, ok := r.byName[name]
	return m, ok
}

// Sort returns the application order: a topological sort of the dependency
// graph, deterministic for a fixed registration order. Dependency cycles
// surface as *dag.CycleError and are fatal configuration errors; the
// registry makes no attempt to heal them.
func (r *Registry) Sort() ([]string, error) {
	g := dag.New[string]()
	for _, name := range r.order {
		m := r.byName[name]
		if len(m.Depends) == 0 {
			g.AddVertex(name)
			continue
		}
		for _, dep := range m.Depends {
			g.Add(dep, name)
		}
	}
	return g.Tsort()
}
