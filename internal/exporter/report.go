// Package exporter renders the plain-text trade report. Formatting only: it
// reproduces the numbers the JSON surface shows and performs no new
// computation.
package exporter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/okian/faceoff/internal/domain/aggregate"
	"github.com/okian/faceoff/internal/domain/model"
	"github.com/okian/faceoff/internal/domain/verdict"
)

// attributeTitles maps tracked attribute keys to report labels.
var attributeTitles = map[string]string{
	model.AttrGoals:   "Goals",
	model.AttrAssists: "Assists",
	model.AttrPIM:     "PIM",
	model.AttrPPP:     "PPP",
	model.AttrSOG:     "SOG",
}

// Render produces the report for sides A and B, an optional third side, and
// their verdict. Scores and relative values carry two decimals, average age
// one, and salaries are comma-grouped.
func Render(a, b aggregate.Group, c *aggregate.Group, v verdict.Verdict) string {
	var sb strings.Builder

	sb.WriteString("TRADE ANALYSIS REPORT\n")
	sb.WriteString("=====================\n\n")

	writeGroup(&sb, a)
	writeGroup(&sb, b)
	if c != nil {
		writeGroup(&sb, *c)
	}

	sb.WriteString("VERDICT\n")
	sb.WriteString("-------\n")
	fmt.Fprintf(&sb, "Net score impact (%s - %s): %s\n", a.Label, b.Label, signed(v.NetScore))
	fmt.Fprintf(&sb, "Relative value gap:         %s\n", signed(v.RelativeValueGap))
	switch v.Winner {
	case verdict.WinnerEven:
		sb.WriteString("Result: even trade\n")
	default:
		fmt.Fprintf(&sb, "Result: side %s wins on relative value\n", v.Winner)
	}
	if v.BestValue != "" {
		fmt.Fprintf(&sb, "Best value: side %s\n", v.BestValue)
	}
	return sb.String()
}

func writeGroup(sb *strings.Builder, g aggregate.Group) {
	fmt.Fprintf(sb, "SIDE %s (%d player", g.Label, g.Count)
	if g.Count != 1 {
		sb.WriteString("s")
	}
	sb.WriteString(")\n")

	for _, p := range g.Players {
		fmt.Fprintf(sb, "  %-24s %-10s %8.2f  %12s\n",
			p.Name, strings.Join(p.Positions, ","), p.Score, humanize.Commaf(p.Salary))
	}
	if g.Count == 0 {
		sb.WriteString("  (no resolved players)\n")
	}

	fmt.Fprintf(sb, "  Total score:          %.2f\n", g.TotalScore)
	fmt.Fprintf(sb, "  Total relative value: %.2f\n", g.TotalRelativeValue)
	fmt.Fprintf(sb, "  Total salary:         %s\n", humanize.Commaf(g.TotalSalary))
	fmt.Fprintf(sb, "  Average age:          %.1f\n", g.AverageAge)

	for _, k := range model.TrackedAttributes {
		fmt.Fprintf(sb, "  %-8s %.0f\n", attributeTitles[k]+":", g.Attributes[k])
	}

	if len(g.Positions) > 0 {
		tags := make([]string, 0, len(g.Positions))
		for tag := range g.Positions {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		parts := make([]string, len(tags))
		for i, tag := range tags {
			parts[i] = fmt.Sprintf("%s x%d", tag, g.Positions[tag])
		}
		fmt.Fprintf(sb, "  Positions: %s\n", strings.Join(parts, ", "))
	}
	sb.WriteString("\n")
}

// signed formats a two-decimal number with an explicit sign.
func signed(v float64) string {
	return fmt.Sprintf("%+.2f", v)
}
