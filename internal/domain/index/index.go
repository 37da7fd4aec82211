// Package index provides name-based membership resolution over a roster.
// An index is built once per entity set and never mutated; replacing the
// roster replaces the index.
package index

import (
	"sort"
	"strings"

	"github.com/okian/faceoff/internal/domain/model"
)

// Normalize folds a free-text name to its lookup key: whitespace-trimmed
// and case-folded. Lookups are exact-match on this key only.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Index maps normalized names to players.
type Index struct {
	byName map[string]model.Player
}

// New builds an index over players. When two rows normalize to the same
// name the later row wins, matching the order the table was ingested.
func New(players []model.Player) *Index {
	byName := make(map[string]model.Player, len(players))
	for _, p := range players {
		byName[Normalize(p.Name)] = p
	}
	return &Index{byName: byName}
}

// Resolve looks up a free-text name. The boolean reports membership; a miss
// is not an error.
func (ix *Index) Resolve(name string) (model.Player, bool) {
	p, ok := ix.byName[Normalize(name)]
	return p, ok
}

// Len returns the number of distinct normalized names.
func (ix *Index) Len() int {
	return len(ix.byName)
}

// Match returns up to limit players whose normalized name starts with the
// normalized prefix, ordered by name. An empty prefix matches everyone.
func (ix *Index) Match(prefix string, limit int) []model.Player {
	prefix = Normalize(prefix)
	keys := make([]string, 0, len(ix.byName))
	for k := range ix.byName {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}
	out := make([]model.Player, len(keys))
	for i, k := range keys {
		out[i] = ix.byName[k]
	}
	return out
}
