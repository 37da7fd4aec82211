package exporter_test

import (
	"strings"
	"testing"

	aggregate "github.com/okian/faceoff/internal/domain/aggregate"
	"github.com/okian/faceoff/internal/domain/model"
	verdict "github.com/okian/faceoff/internal/domain/verdict"
	exporter "github.com/okian/faceoff/internal/exporter"
	. "github.com/smartystreets/goconvey/convey"
)

func sideA() aggregate.Group {
	return aggregate.Group{
		Label: "A", Count: 2,
		TotalScore: 156.5, TotalSalary: 14500000, TotalAge: 58,
		AverageAge: 29, TotalRelativeValue: 1.6,
		Attributes: map[string]float64{model.AttrGoals: 60, model.AttrAssists: 78, model.AttrPIM: 64, model.AttrPPP: 40, model.AttrSOG: 450},
		Positions:  map[string]int{"C": 1, "LW": 1, "RW": 1},
		Players: []model.Player{
			{Name: "Alice Carver", Positions: []string{"C"}, Score: 82.5, Salary: 8500000},
			{Name: "Boris Janek", Positions: []string{"LW", "RW"}, Score: 74, Salary: 6000000},
		},
	}
}

func sideB() aggregate.Group {
	return aggregate.Group{
		Label: "B", Count: 1,
		TotalScore: 61.25, TotalSalary: 4250000, TotalAge: 24,
		AverageAge: 24, TotalRelativeValue: -0.7,
		Attributes: map[string]float64{model.AttrGoals: 8, model.AttrAssists: 29, model.AttrPIM: 36, model.AttrPPP: 10, model.AttrSOG: 130},
		Positions:  map[string]int{"D": 1},
		Players: []model.Player{
			{Name: "Chen Wei", Positions: []string{"D"}, Score: 61.25, Salary: 4250000},
		},
	}
}

func TestRender(t *testing.T) {
	Convey("Given two aggregated sides and their verdict", t, func() {
		a, b := sideA(), sideB()
		v := verdict.Compare(a, b, nil)
		report := exporter.Render(a, b, nil, v)

		Convey("Then both sides appear with their totals", func() {
			So(report, ShouldContainSubstring, "SIDE A (2 players)")
			So(report, ShouldContainSubstring, "SIDE B (1 player)")
			So(report, ShouldContainSubstring, "Total score:          156.50")
			So(report, ShouldContainSubstring, "Total score:          61.25")
		})

		Convey("Then salaries are comma-grouped", func() {
			So(report, ShouldContainSubstring, "14,500,000")
			So(report, ShouldContainSubstring, "4,250,000")
			So(report, ShouldContainSubstring, "8,500,000")
		})

		Convey("Then average age renders with one decimal", func() {
			So(report, ShouldContainSubstring, "Average age:          29.0")
			So(report, ShouldContainSubstring, "Average age:          24.0")
		})

		Convey("Then the verdict section shows signed gaps and the winner", func() {
			So(report, ShouldContainSubstring, "Net score impact (A - B): +95.25")
			So(report, ShouldContainSubstring, "Relative value gap:         +2.30")
			So(report, ShouldContainSubstring, "Result: side A wins on relative value")
		})

		Convey("Then position tallies are listed", func() {
			So(report, ShouldContainSubstring, "Positions: C x1, LW x1, RW x1")
		})
	})

	Convey("Given a third side flagged best value", t, func() {
		a, b := sideA(), sideB()
		c := aggregate.Group{Label: "C", Count: 1, TotalRelativeValue: 2.5,
			Attributes: map[string]float64{}, Positions: map[string]int{}}
		v := verdict.Compare(a, b, &c)
		report := exporter.Render(a, b, &c, v)

		So(report, ShouldContainSubstring, "SIDE C")
		So(report, ShouldContainSubstring, "Best value: side C")
	})

	Convey("Given empty sides", t, func() {
		empty := func(label string) aggregate.Group {
			return aggregate.Group{Label: label,
				Attributes: map[string]float64{}, Positions: map[string]int{}}
		}
		a, b := empty("A"), empty("B")
		report := exporter.Render(a, b, nil, verdict.Compare(a, b, nil))

		So(report, ShouldContainSubstring, "(no resolved players)")
		So(report, ShouldContainSubstring, "Result: even trade")
		So(strings.Count(report, "Average age:          0.0"), ShouldEqual, 2)
	})
}
