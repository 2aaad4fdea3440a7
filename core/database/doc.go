// Package database handles database connections and ledger persistence.
//
// It wraps GORM to configure MySQL (production) or SQLite (local and test)
// connections, and provides the snapshot Store that persists the ledger's
// product and item tables plus its id counters.
//
// # Snapshot persistence
//
// The ledger itself runs in memory; durability comes from saving complete
// snapshots. Save replaces the previous snapshot inside one transaction and
// Load rebuilds it, so the persisted state is always one consistent ledger,
// never a mix of two.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	store := database.NewStore(db)
//	if err := store.Migrate(); err != nil { ... }
//	snap, err := store.Load(ctx)
package database
