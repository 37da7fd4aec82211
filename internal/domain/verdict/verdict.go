// Package verdict compares aggregated trade sides on relative value and raw
// score.
package verdict

import (
	"math"

	"github.com/okian/faceoff/internal/domain/aggregate"
)

// TieTolerance is the relative-value margin below which the two sides are
// declared even rather than one side winning.
const TieTolerance = 0.1

// Winner identifies the favored side of a comparison.
type Winner string

// Winner values.
const (
	WinnerA    Winner = "A"
	WinnerB    Winner = "B"
	WinnerEven Winner = "Even"
)

// Verdict is the outcome of comparing side A against side B, with an
// optional third side flagged for best value.
type Verdict struct {
	// NetScore is A's total raw score minus B's.
	NetScore float64 `json:"net_score"`
	// RelativeValueGap is A's total relative value minus B's.
	RelativeValueGap float64 `json:"relative_value_gap"`
	Winner           Winner  `json:"winner"`
	// BestValue names the third side when its relative-value total strictly
	// exceeds both A and B, empty otherwise.
	BestValue string `json:"best_value,omitempty"`
}

// Compare evaluates side A against side B, and optionally a third side c.
// A wins only when its relative-value total clears B's by more than
// TieTolerance, and symmetrically for B; anything inside the margin is even.
// The third side is flagged as best value on a strict comparison with no
// tolerance. That asymmetry with the A/B rule is inherited behavior and is
// kept on purpose.
func Compare(a, b aggregate.Group, c *aggregate.Group) Verdict {
	v := Verdict{
		NetScore:         a.TotalScore - b.TotalScore,
		RelativeValueGap: a.TotalRelativeValue - b.TotalRelativeValue,
		Winner:           WinnerEven,
	}
	switch {
	case a.TotalRelativeValue > b.TotalRelativeValue+TieTolerance:
		v.Winner = WinnerA
	case b.TotalRelativeValue > a.TotalRelativeValue+TieTolerance:
		v.Winner = WinnerB
	}

	if c != nil && c.TotalRelativeValue > math.Max(a.TotalRelativeValue, b.TotalRelativeValue) {
		v.BestValue = c.Label
	}
	return v
}
