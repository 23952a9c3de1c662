package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/hirewire/fitrank/pkg/metrics"
)

func TestNewManager(t *testing.T) {
	Convey("Given a fresh registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When creating a manager against it", func() {
			m := metrics.NewManager(
				metrics.WithRegistry(reg),
				metrics.WithNamespace("test"),
				metrics.WithSubsystem("engine"),
			)

			Convey("Then all metric families register", func() {
				So(m, ShouldNotBeNil)

				families, err := reg.Gather()
				So(err, ShouldBeNil)
				// Histograms without observations still gather; counters
				// and gauges appear once touched, so just confirm the
				// registry accepted the registrations without conflict.
				So(families, ShouldNotBeNil)
			})
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the package-level recorders", t, func() {
		Convey("When recording engine activity", func() {
			So(func() {
				metrics.RecordApplicationScored(5 * time.Millisecond)
				metrics.RecordScoringError()
				metrics.RecordJudgeCall("industryWorkedIn", 2*time.Millisecond)
				metrics.RecordJudgeFailure("industryWorkedIn")
				metrics.RecordRank(10*time.Millisecond, 4, 2)
			}, ShouldNotPanic)
		})

		Convey("Then the shared registry exposes the series", func() {
			families, err := metrics.Registry().Gather()
			So(err, ShouldBeNil)

			names := make(map[string]bool, len(families))
			for _, f := range families {
				names[f.GetName()] = true
			}
			So(names["fitrank_engine_applications_scored_total"], ShouldBeTrue)
			So(names["fitrank_engine_judge_calls_total"], ShouldBeTrue)
			So(names["fitrank_engine_rank_requests_total"], ShouldBeTrue)
		})
	})
}
