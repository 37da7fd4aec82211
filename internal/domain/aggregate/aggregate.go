// Package aggregate folds a selection of names into a comparable group
// summary. Building a group is pure: the same selection against the same
// index always yields the same totals, so callers may recompute freely or
// memoize as an optimization.
package aggregate

import (
	"strings"

	"github.com/okian/faceoff/internal/domain/index"
	"github.com/okian/faceoff/internal/domain/model"
)

// Group is the derived summary of one trade side. Ephemeral: recomputed
// from the selection and the current roster on demand.
type Group struct {
	Label              string             `json:"label"`
	Count              int                `json:"count"`
	TotalScore         float64            `json:"total_score"`
	TotalSalary        float64            `json:"total_salary"`
	TotalAge           float64            `json:"total_age"`
	AverageAge         float64            `json:"average_age"`
	TotalRelativeValue float64            `json:"total_relative_value"`
	Attributes         map[string]float64 `json:"attributes"`
	Positions          map[string]int     `json:"positions"`
	Players            []model.Player     `json:"players"`
}

// Build aggregates the selection against the index. Entries that trim to
// empty are skipped; names with no roster match are skipped silently; both
// are deliberate and must never surface as errors. A player holding several
// position tags counts once toward each tag.
func Build(label string, selection []string, ix *index.Index) Group {
	g := Group{
		Label:      label,
		Attributes: make(map[string]float64, len(model.TrackedAttributes)),
		Positions:  make(map[string]int),
	}
	for _, k := range model.TrackedAttributes {
		g.Attributes[k] = 0
	}

	for _, entry := range selection {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		p, ok := ix.Resolve(entry)
		if !ok {
			continue
		}

		g.Count++
		g.TotalScore += p.Score
		g.TotalSalary += p.Salary
		g.TotalAge += p.Age
		g.TotalRelativeValue += p.RelativeValue
		for k, v := range p.Attributes {
			g.Attributes[k] += v
		}
		for _, tag := range p.Positions {
			g.Positions[strings.TrimSpace(tag)]++
		}
		g.Players = append(g.Players, p)
	}

	if g.Count > 0 {
		g.AverageAge = g.TotalAge / float64(g.Count)
	}
	return g
}
