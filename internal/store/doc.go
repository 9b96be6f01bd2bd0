// Package store provides SQLite-backed storage for indexed shell history.
//
// The schema is owned by migrations (see Migrations and internal/migrate):
//   - history: content table, one row per (timestamp, command) pair.
//     Exact duplicates replace the earlier row; ids are never reused.
//   - fts_history: full-text index (fts4) over command text, one row per
//     history row, written in the same transaction as the content row so
//     the two can never diverge.
//   - fts_history_terms: fts4aux term-inspection view over fts_history.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// The store assumes single-writer usage and relies on SQLite's own
// isolation when a user pokes at the database through an external shell
// while an import is running.
package store
