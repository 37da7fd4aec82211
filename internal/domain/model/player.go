// Package model contains domain models passed between layers.
package model

// Tracked numeric attribute keys aggregated per group. Ingestion maps
// column-header aliases onto these canonical names.
const (
	AttrGoals   = "goals"
	AttrAssists = "assists"
	AttrPIM     = "pim"
	AttrPPP     = "ppp"
	AttrSOG     = "sog"
)

// TrackedAttributes lists the canonical attribute keys in display order.
var TrackedAttributes = []string{AttrGoals, AttrAssists, AttrPIM, AttrPPP, AttrSOG}

// PositionUnknown is assigned when a row carries no position tags.
const PositionUnknown = "unknown"

// Player represents one roster member. Instances are created once per
// ingested table and are immutable afterwards; re-ingestion replaces the
// whole set.
type Player struct {
	Name      string   `json:"name"`      // display name, unique under normalization
	Positions []string `json:"positions"` // position tags, at least one (PositionUnknown fallback)
	Score     float64  `json:"score"`     // raw performance/value metric
	// ScoreValid reports whether Score parsed to a finite number. Players
	// with invalid scores stay on the roster but are excluded from the
	// normalization population and carry RelativeValue 0.
	ScoreValid bool    `json:"score_valid"`
	Salary     float64 `json:"salary"`
	Age        float64 `json:"age"`
	// Attributes holds the tracked numeric attributes (goals, assists, ...),
	// zero-valued when the column is missing or unparseable.
	Attributes map[string]float64 `json:"attributes"`
	// Extra preserves unrecognized columns verbatim. Never aggregated.
	Extra map[string]string `json:"extra,omitempty"`
	// RelativeValue is the population z-score of Score, derived once per
	// roster. Always finite.
	RelativeValue float64 `json:"relative_value"`
}

// Roster is the full ingested player set plus its population statistics.
// Exactly one roster is active per session; it is replaced wholesale.
type Roster struct {
	Version string // unique id per ingestion, used for cache invalidation
	Players []Player
	Mean    float64 // arithmetic mean of valid scores
	StdDev  float64 // sample standard deviation of valid scores
	Scored  int     // number of players with a valid score
}
