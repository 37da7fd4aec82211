// Package repository holds the session state: the active roster, its lookup
// index, and memoized group aggregates. The roster is only ever replaced
// wholesale, never patched, so readers always see a consistent snapshot.
package repository

import (
	"context"

	"github.com/okian/faceoff/internal/domain/aggregate"
	"github.com/okian/faceoff/internal/domain/model"
)

// Store provides access to the active roster and derived aggregates.
type Store interface {
	// Replace installs a new roster, rebuilding the index and discarding
	// every memoized aggregate. A nil roster resets the session.
	Replace(ctx context.Context, r *model.Roster)

	// Roster returns the active roster. Returns ErrNoRoster when none has
	// been ingested.
	Roster(ctx context.Context) (*model.Roster, error)

	// Version returns the active roster's version id, empty when none.
	Version(ctx context.Context) string

	// Count returns the number of players on the active roster.
	Count(ctx context.Context) int

	// Match returns up to limit players whose normalized name starts with
	// the normalized prefix, ordered by name.
	Match(ctx context.Context, prefix string, limit int) ([]model.Player, error)

	// Aggregate folds the selection into a group summary, serving repeats
	// of the same selection from the memo cache until the roster changes.
	Aggregate(ctx context.Context, label string, selection []string) (aggregate.Group, error)

	// CacheStats reports memo cache hits and misses since startup.
	CacheStats(ctx context.Context) (hits, misses uint64)
}
