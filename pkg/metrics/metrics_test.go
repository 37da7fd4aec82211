package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	metrics "github.com/okian/faceoff/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()
		m := metrics.NewManager(metrics.WithPrometheusRegistry(reg), metrics.WithNamespace("test"))
		So(m, ShouldNotBeNil)

		Convey("Then all metric families register without collision", func() {
			families, err := reg.Gather()
			So(err, ShouldBeNil)
			// Gauges and counters appear on first use; histograms register eagerly.
			So(families, ShouldNotBeNil)
		})
	})

	Convey("Given the global manager", t, func() {
		Convey("Then the package helpers do not panic", func() {
			So(func() {
				metrics.RecordRosterIngested()
				metrics.RecordRosterRejected("validation")
				metrics.RecordIngestDuration(12.5)
				metrics.UpdateRosterPlayers(19)
				metrics.UpdateRosterScored(18)
				metrics.RecordAggregation()
				metrics.RecordAggregateCacheHit()
				metrics.RecordAggregateCacheMiss()
				metrics.RecordComparison("Even")
				metrics.RecordExport()
				metrics.RecordAggregationDuration(0.4)
				metrics.RecordHTTPRequest("compare", "POST", "200")
				metrics.RecordHTTPRequestDuration("compare", "POST", "200", 3.2)
				metrics.RecordErrorByType("client_error", "medium")
				metrics.RecordErrorByEndpoint("roster", "POST", "client_error")
				metrics.RecordErrorLatency("http", "client_error", 1.1)
				metrics.UpdateSystemMemoryUsage(1 << 20)
				metrics.UpdateSystemGoroutineCount(8)
			}, ShouldNotPanic)
		})

		Convey("Then the custom registry is exposed for /healthz", func() {
			So(metrics.GetRegistry(), ShouldNotBeNil)
		})
	})
}
