package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	service "github.com/okian/faceoff/internal/app"
	"github.com/okian/faceoff/internal/adapters/repository"
	"github.com/okian/faceoff/internal/domain/roster"
	verdict "github.com/okian/faceoff/internal/domain/verdict"
	"github.com/okian/faceoff/pkg/logger"
	"github.com/okian/faceoff/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func newService(opts ...service.Option) *service.Service {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	return service.New(opts...)
}

func TestIngestRoster(t *testing.T) {
	ctx := context.Background()

	Convey("Given a fresh service", t, func() {
		svc := newService()

		Convey("When ingesting the sample roster", func() {
			sum, err := svc.IngestRoster(ctx, strings.NewReader(sampleRoster))
			So(err, ShouldBeNil)

			Convey("Then the summary reflects the population", func() {
				So(sum.Players, ShouldEqual, 19)
				So(sum.Scored, ShouldEqual, 19)
				So(sum.Version, ShouldNotBeEmpty)
				So(sum.Mean, ShouldAlmostEqual, 57.68421052631579, 1e-9)
				So(sum.StdDev, ShouldAlmostEqual, 15.553858512275436, 1e-9)
			})
		})

		Convey("When ingesting garbage", func() {
			_, err := svc.IngestRoster(ctx, strings.NewReader("Foo,Bar\n1,2\n"))

			Convey("Then the validation kind surfaces and nothing commits", func() {
				So(errors.Is(err, roster.ErrValidation), ShouldBeTrue)

				_, err := svc.Players(ctx, "")
				So(errors.Is(err, repository.ErrNoRoster), ShouldBeTrue)
			})
		})

		Convey("When re-ingesting after a good roster", func() {
			_, err := svc.IngestRoster(ctx, strings.NewReader(sampleRoster))
			So(err, ShouldBeNil)

			_, err = svc.IngestRoster(ctx, strings.NewReader("Player,Score\nabc,def\n"))

			Convey("Then the failed attempt keeps the previous roster active", func() {
				So(errors.Is(err, roster.ErrValidation), ShouldBeTrue)
				players, perr := svc.Players(ctx, "auden")
				So(perr, ShouldBeNil)
				So(len(players), ShouldEqual, 1)
			})
		})
	})
}

func TestPlayers(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with the sample roster", t, func() {
		svc := newService()
		_, err := svc.IngestRoster(ctx, strings.NewReader(sampleRoster))
		So(err, ShouldBeNil)

		Convey("Then an empty prefix lists the roster", func() {
			players, err := svc.Players(ctx, "")
			So(err, ShouldBeNil)
			So(len(players), ShouldEqual, 19)
		})

		Convey("Then prefixes filter case-insensitively", func() {
			players, err := svc.Players(ctx, "  BRAM")
			So(err, ShouldBeNil)
			So(len(players), ShouldEqual, 1)
			So(players[0].Name, ShouldEqual, "Bram Holt")
		})

		Convey("Then the match limit caps results", func() {
			capped := newService(service.WithMatchLimit(3))
			_, err := capped.IngestRoster(ctx, strings.NewReader(sampleRoster))
			So(err, ShouldBeNil)
			players, err := capped.Players(ctx, "")
			So(err, ShouldBeNil)
			So(len(players), ShouldEqual, 3)
		})
	})
}

func TestCompare(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with the sample roster", t, func() {
		svc := newService()
		_, err := svc.IngestRoster(ctx, strings.NewReader(sampleRoster))
		So(err, ShouldBeNil)

		Convey("When comparing the golden two-for-two trade", func() {
			cmp, err := svc.Compare(ctx, service.Selections{
				A: []string{"Auden Kask", "Jonas Ekdal"},
				B: []string{"Bram Holt", "Casper Rand"},
			})
			So(err, ShouldBeNil)

			Convey("Then side totals match the golden fixture", func() {
				So(cmp.A.TotalScore, ShouldAlmostEqual, 146.0, 1e-9)
				So(cmp.A.TotalSalary, ShouldAlmostEqual, 14100000, 1e-6)
				So(cmp.A.AverageAge, ShouldAlmostEqual, 29.0, 1e-9)
				So(cmp.A.TotalRelativeValue, ShouldAlmostEqual, 1.9693877839504152, 1e-9)

				So(cmp.B.TotalScore, ShouldAlmostEqual, 158.25, 1e-9)
				So(cmp.B.TotalSalary, ShouldAlmostEqual, 14800000, 1e-6)
				So(cmp.B.AverageAge, ShouldAlmostEqual, 29.0, 1e-9)
				So(cmp.B.TotalRelativeValue, ShouldAlmostEqual, 2.7569737061402075, 1e-9)
			})

			Convey("Then the verdict is stable", func() {
				So(cmp.Verdict.NetScore, ShouldAlmostEqual, -12.25, 1e-9)
				So(cmp.Verdict.RelativeValueGap, ShouldAlmostEqual, -0.7875859221897923, 1e-9)
				So(cmp.Verdict.Winner, ShouldEqual, verdict.WinnerB)
				So(cmp.Verdict.BestValue, ShouldBeEmpty)
			})

			Convey("Then the roster version is carried", func() {
				So(cmp.RosterVersion, ShouldNotBeEmpty)
			})
		})

		Convey("When a third side out-values both", func() {
			cmp, err := svc.Compare(ctx, service.Selections{
				A: []string{"Jonas Ekdal"},
				B: []string{"Kalle Ruud"},
				C: []string{"Auden Kask", "Bram Holt"},
			})
			So(err, ShouldBeNil)
			So(cmp.C, ShouldNotBeNil)
			So(cmp.Verdict.BestValue, ShouldEqual, "C")
		})

		Convey("When selections carry blanks and unknowns", func() {
			cmp, err := svc.Compare(ctx, service.Selections{
				A: []string{"", "  ", "No Such Player", "Auden Kask"},
				B: []string{"ghost"},
			})
			So(err, ShouldBeNil)
			So(cmp.A.Count, ShouldEqual, 1)
			So(cmp.B.Count, ShouldEqual, 0)
		})

		Convey("When a side exceeds the group cap", func() {
			small := newService(service.WithMaxGroupSize(2))
			_, err := small.IngestRoster(ctx, strings.NewReader(sampleRoster))
			So(err, ShouldBeNil)

			_, err = small.Compare(ctx, service.Selections{
				A: []string{"a", "b", "c"},
				B: nil,
			})
			So(errors.Is(err, service.ErrGroupTooLarge), ShouldBeTrue)
		})
	})

	Convey("Given a service without a roster", t, func() {
		svc := newService()
		_, err := svc.Compare(ctx, service.Selections{A: []string{"x"}, B: []string{"y"}})
		So(errors.Is(err, repository.ErrNoRoster), ShouldBeTrue)
	})
}

func TestCompareAggregationCount(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with the sample roster", t, func() {
		svc := newService()
		_, err := svc.IngestRoster(ctx, strings.NewReader(sampleRoster))
		So(err, ShouldBeNil)

		Convey("When comparing with a third side", func() {
			before := aggregationsTotal(t)
			_, err := svc.Compare(ctx, service.Selections{
				A: []string{"Auden Kask"},
				B: []string{"Bram Holt"},
				C: []string{"Casper Rand"},
			})
			So(err, ShouldBeNil)

			Convey("Then one aggregation is counted per side", func() {
				So(aggregationsTotal(t)-before, ShouldEqual, 3)
			})
		})

		Convey("When comparing two sides only", func() {
			before := aggregationsTotal(t)
			_, err := svc.Compare(ctx, service.Selections{
				A: []string{"Auden Kask"},
				B: []string{"Bram Holt"},
			})
			So(err, ShouldBeNil)
			So(aggregationsTotal(t)-before, ShouldEqual, 2)
		})
	})
}

// aggregationsTotal reads the aggregation counter off the service registry.
func aggregationsTotal(t *testing.T) float64 {
	t.Helper()
	families, err := metrics.GetRegistry().Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "faceoff_trade_aggregations_total" {
			continue
		}
		var total float64
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

func TestExport(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with the sample roster", t, func() {
		svc := newService()
		_, err := svc.IngestRoster(ctx, strings.NewReader(sampleRoster))
		So(err, ShouldBeNil)

		Convey("When exporting the golden trade", func() {
			report, err := svc.Export(ctx, service.Selections{
				A: []string{"Auden Kask", "Jonas Ekdal"},
				B: []string{"Bram Holt", "Casper Rand"},
			})
			So(err, ShouldBeNil)

			Convey("Then the report shows the same numbers as the JSON surface", func() {
				So(report, ShouldContainSubstring, "Total score:          146.00")
				So(report, ShouldContainSubstring, "Total score:          158.25")
				So(report, ShouldContainSubstring, "14,100,000")
				So(report, ShouldContainSubstring, "14,800,000")
				So(report, ShouldContainSubstring, "Average age:          29.0")
				So(report, ShouldContainSubstring, "Net score impact (A - B): -12.25")
				So(report, ShouldContainSubstring, "Result: side B wins on relative value")
			})
		})
	})
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with one roster and one comparison", t, func() {
		svc := newService()
		_, err := svc.IngestRoster(ctx, strings.NewReader(sampleRoster))
		So(err, ShouldBeNil)
		_, err = svc.Compare(ctx, service.Selections{A: []string{"Auden Kask"}, B: []string{"Bram Holt"}})
		So(err, ShouldBeNil)

		Convey("Then the stats map reports session scale", func() {
			stats := svc.GetStats()
			So(stats["roster_players"], ShouldEqual, 19)
			So(stats["roster_version"], ShouldNotBeEmpty)
			So(stats["max_group_size"], ShouldEqual, 25)
		})
	})
}

func TestReset(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with a roster", t, func() {
		svc := newService()
		_, err := svc.IngestRoster(ctx, strings.NewReader(sampleRoster))
		So(err, ShouldBeNil)

		Convey("When resetting the session", func() {
			svc.Reset(ctx)

			Convey("Then roster-dependent reads report no roster", func() {
				_, err := svc.Players(ctx, "")
				So(errors.Is(err, repository.ErrNoRoster), ShouldBeTrue)
			})
		})
	})
}
