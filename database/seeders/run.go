// Package seeders loads development fixtures into the document store.
//
// Define a seeder in any file in this package:
//
//	func init() {
//	    seeders.Register("parts", seedParts)
//	}
//
// Then run via CLI: gearbay seed
package seeders

import (
	"context"
	"sync"

	"github.com/shashiranjanraj/gearbay/pkg/logger"
	"github.com/shashiranjanraj/gearbay/pkg/store"
)

// SeederFunc is the signature for a seed function.
type SeederFunc func(ctx context.Context, db *store.DB) error

type seederEntry struct {
	name string
	fn   SeederFunc
}

var (
	mu      sync.Mutex
	entries []seederEntry
)

// Register adds a seeder to the registry. Call from init() in seeder
// files.
func Register(name string, fn SeederFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seederEntry{name: name, fn: fn})
}

// Run executes every registered seeder in registration order, stopping
// on the first error.
func Run(ctx context.Context, db *store.DB) error {
	mu.Lock()
	current := make([]seederEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	for _, e := range current {
		logger.Info("running seeder", "name", e.name)
		if err := e.fn(ctx, db); err != nil {
			logger.Error("seeder failed", "name", e.name, "error", err)
			return err
		}
	}
	return nil
}
