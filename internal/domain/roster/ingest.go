// Package roster ingests delimiter-separated player tables and derives the
// canonical roster with population statistics. The pipeline runs to
// completion atomically: sanitize, validate, normalize. On any error no
// roster is produced.
package roster

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/faceoff/internal/domain/model"
	"github.com/okian/faceoff/internal/domain/sanitize"
)

// Column roles recognized in the header row (case-insensitive after trim).
// Anything else is preserved on the player record as an extra field.
const (
	roleName     = "name"
	roleScore    = "score"
	rolePosition = "position"
	roleSalary   = "salary"
	roleAge      = "age"
)

// columnAliases maps normalized header keys onto column roles or tracked
// attribute names.
var columnAliases = map[string]string{
	"player":            roleName,
	"name":              roleName,
	"score":             roleScore,
	"position":          rolePosition,
	"positions":         rolePosition,
	"pos":               rolePosition,
	"salary":            roleSalary,
	"age":               roleAge,
	"goals":             model.AttrGoals,
	"g":                 model.AttrGoals,
	"assists":           model.AttrAssists,
	"a":                 model.AttrAssists,
	"pim":               model.AttrPIM,
	"penalty minutes":   model.AttrPIM,
	"ppp":               model.AttrPPP,
	"power play points": model.AttrPPP,
	"power-play points": model.AttrPPP,
	"sog":               model.AttrSOG,
	"shots on goal":     model.AttrSOG,
	"shots":             model.AttrSOG,
}

type parser struct {
	maxRows   int
	delimiter rune
}

// Parse reads a delimiter-separated table with a header row and produces the
// canonical roster. Every cell is sanitized before interpretation; rows
// without a name are dropped; numeric cells parse tolerantly to zero except
// the score, which must be finite for the player to join the normalization
// population.
func Parse(r io.Reader, opts ...Option) (*model.Roster, error) {
	p := &parser{}
	for _, opt := range opts {
		opt(p)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		// Double-wrap so the cause stays matchable: callers distinguish a
		// source that stopped (e.g. a body size limit) from a bad table.
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return p.parse(data)
}

func (p *parser) parse(data []byte) (*model.Roster, error) {
	delim := p.delimiter
	if delim == 0 {
		delim = sniffDelimiter(data)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: missing required columns", ErrValidation)
	}

	// Resolve each header cell to a role, a tracked attribute, or an extra.
	header := records[0]
	roles := make([]string, len(header))
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = sanitize.Header(h)
		roles[i] = columnAliases[strings.ToLower(names[i])]
	}

	var players []model.Player
	complete := 0 // rows carrying both a name and a score cell
	for _, rec := range records[1:] {
		if p.maxRows > 0 && len(players) >= p.maxRows {
			break
		}
		cells := sanitize.Row(rec)

		pl := model.Player{Attributes: make(map[string]float64, len(model.TrackedAttributes))}
		var scoreCell string
		for i, cell := range cells {
			if i >= len(header) {
				break // ragged tail beyond the header, nothing to bind it to
			}
			switch roles[i] {
			case roleName:
				pl.Name = strings.TrimSpace(cell)
			case roleScore:
				scoreCell = strings.TrimSpace(cell)
			case rolePosition:
				pl.Positions = splitPositions(cell)
			case roleSalary:
				pl.Salary, _ = parseFloat(cell)
			case roleAge:
				pl.Age, _ = parseFloat(cell)
			case "":
				if names[i] == "" {
					continue
				}
				if pl.Extra == nil {
					pl.Extra = make(map[string]string)
				}
				pl.Extra[names[i]] = cell
			default:
				pl.Attributes[roles[i]], _ = parseFloat(cell)
			}
		}

		// A row without a name can never be resolved by a selection.
		if pl.Name == "" {
			continue
		}
		if len(pl.Positions) == 0 {
			pl.Positions = []string{model.PositionUnknown}
		}
		for _, k := range model.TrackedAttributes {
			if _, ok := pl.Attributes[k]; !ok {
				pl.Attributes[k] = 0
			}
		}
		if scoreCell != "" {
			complete++
		}
		pl.Score, pl.ScoreValid = parseFloat(scoreCell)
		players = append(players, pl)
	}

	if complete == 0 {
		return nil, fmt.Errorf("%w: missing required columns", ErrValidation)
	}

	mean, stdDev, scored := Normalize(players)
	if scored == 0 {
		return nil, fmt.Errorf("%w: no numeric score data", ErrValidation)
	}

	return &model.Roster{
		Version: uuid.NewString(),
		Players: players,
		Mean:    mean,
		StdDev:  stdDev,
		Scored:  scored,
	}, nil
}

// sniffDelimiter picks tab over comma when the header row is tab-separated.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.ContainsRune(line, '\t') && !bytes.ContainsRune(line, ',') {
		return '\t'
	}
	return ','
}

// splitPositions splits a tag list on commas or slashes ("C,LW" and "C/LW"
// both occur in exports), trimming each tag and dropping empties.
func splitPositions(cell string) []string {
	parts := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ',' || r == '/'
	})
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// parseFloat tolerantly parses a numeric cell. Empty, unparseable, and
// non-finite values report false with a zero value.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
