package repository_test

import (
	"context"
	"errors"
	"testing"

	repository "github.com/okian/faceoff/internal/adapters/repository"
	"github.com/okian/faceoff/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func testRoster(version string) *model.Roster {
	players := []model.Player{
		{Name: "Alice Carver", Positions: []string{"C"}, Score: 80, ScoreValid: true, Salary: 8000000, Age: 27, RelativeValue: 1, Attributes: map[string]float64{model.AttrGoals: 30}},
		{Name: "Boris Janek", Positions: []string{"LW"}, Score: 70, ScoreValid: true, Salary: 6000000, Age: 31, RelativeValue: 0, Attributes: map[string]float64{model.AttrGoals: 20}},
		{Name: "Chen Wei", Positions: []string{"D"}, Score: 60, ScoreValid: true, Salary: 4000000, Age: 24, RelativeValue: -1, Attributes: map[string]float64{model.AttrGoals: 10}},
	}
	return &model.Roster{Version: version, Players: players, Mean: 70, StdDev: 10, Scored: 3}
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty session store", t, func() {
		store := repository.NewSessionStore()

		Convey("Then roster-dependent reads report no roster", func() {
			_, err := store.Roster(ctx)
			So(errors.Is(err, repository.ErrNoRoster), ShouldBeTrue)

			_, err = store.Aggregate(ctx, "A", []string{"anyone"})
			So(errors.Is(err, repository.ErrNoRoster), ShouldBeTrue)

			_, err = store.Match(ctx, "a", 10)
			So(errors.Is(err, repository.ErrNoRoster), ShouldBeTrue)

			So(store.Count(ctx), ShouldEqual, 0)
			So(store.Version(ctx), ShouldBeEmpty)
		})
	})

	Convey("Given a store with an installed roster", t, func() {
		store := repository.NewSessionStore()
		store.Replace(ctx, testRoster("v1"))

		Convey("Then the snapshot is readable", func() {
			r, err := store.Roster(ctx)
			So(err, ShouldBeNil)
			So(r.Version, ShouldEqual, "v1")
			So(store.Count(ctx), ShouldEqual, 3)
			So(store.Version(ctx), ShouldEqual, "v1")
		})

		Convey("Then matching resolves by normalized prefix", func() {
			hits, err := store.Match(ctx, "BO", 5)
			So(err, ShouldBeNil)
			So(len(hits), ShouldEqual, 1)
			So(hits[0].Name, ShouldEqual, "Boris Janek")
		})

		Convey("When aggregating the same selection twice", func() {
			g1, err := store.Aggregate(ctx, "A", []string{"Alice Carver", "Chen Wei"})
			So(err, ShouldBeNil)
			g2, err := store.Aggregate(ctx, "A", []string{"alice carver ", "CHEN WEI"})
			So(err, ShouldBeNil)

			Convey("Then the second call is a cache hit with identical totals", func() {
				So(g2.TotalScore, ShouldEqual, g1.TotalScore)
				hits, misses := store.CacheStats(ctx)
				So(hits, ShouldEqual, 1)
				So(misses, ShouldEqual, 1)
			})
		})

		Convey("When the roster is replaced", func() {
			g1, err := store.Aggregate(ctx, "A", []string{"Alice Carver"})
			So(err, ShouldBeNil)
			So(g1.Count, ShouldEqual, 1)

			next := testRoster("v2")
			next.Players = next.Players[:1] // Alice only
			store.Replace(ctx, next)

			Convey("Then memoized aggregates are invalidated with it", func() {
				g2, err := store.Aggregate(ctx, "A", []string{"Alice Carver", "Chen Wei"})
				So(err, ShouldBeNil)
				So(g2.Count, ShouldEqual, 1) // Chen Wei no longer resolves

				_, misses := store.CacheStats(ctx)
				So(misses, ShouldBeGreaterThanOrEqualTo, 2)
			})

			Convey("Then selections naming removed players resolve to not-found", func() {
				g2, err := store.Aggregate(ctx, "B", []string{"Chen Wei"})
				So(err, ShouldBeNil)
				So(g2.Count, ShouldEqual, 0)
			})
		})

		Convey("When the store is reset with a nil roster", func() {
			store.Replace(ctx, nil)

			_, err := store.Roster(ctx)
			So(errors.Is(err, repository.ErrNoRoster), ShouldBeTrue)
			So(store.Count(ctx), ShouldEqual, 0)
		})
	})

	Convey("Given a store with memoization disabled", t, func() {
		store := repository.NewSessionStore(repository.WithCacheSize(0))
		store.Replace(ctx, testRoster("v1"))

		Convey("Then repeated aggregations recompute every time", func() {
			for i := 0; i < 3; i++ {
				g, err := store.Aggregate(ctx, "A", []string{"Boris Janek"})
				So(err, ShouldBeNil)
				So(g.TotalScore, ShouldEqual, 70.0)
			}
			hits, misses := store.CacheStats(ctx)
			So(hits, ShouldEqual, 0)
			So(misses, ShouldEqual, 3)
		})
	})
}
