package model_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hirewire/fitrank/internal/domain/model"
)

func intp(v int) *int { return &v }

func TestPositionDates(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	Convey("Given a closed position", t, func() {
		p := model.Position{
			StartMonth: 1, StartYear: 2020,
			EndMonth: intp(12), EndYear: intp(2020),
		}

		Convey("Then the start date is the first of the start month", func() {
			So(p.StartDate(), ShouldEqual, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC))
		})

		Convey("Then the end date is exclusive of the end month", func() {
			So(p.EndDate(now), ShouldEqual, time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC))
		})

		Convey("Then the calendar span counts the end month", func() {
			So(p.Months(now), ShouldEqual, 12)
			So(p.Ongoing(), ShouldBeFalse)
		})
	})

	Convey("Given an ongoing position", t, func() {
		p := model.Position{StartMonth: 3, StartYear: 2025}

		So(p.Ongoing(), ShouldBeTrue)
		So(p.EndDate(now), ShouldEqual, now)
		So(p.Months(now), ShouldEqual, 4)
	})

	Convey("Given a position without a start date", t, func() {
		p := model.Position{}

		So(p.HasStart(), ShouldBeFalse)
		So(p.Months(now), ShouldEqual, 0)
	})
}

func TestCycleUnit(t *testing.T) {
	Convey("Given cycle lengths in different units", t, func() {
		So(model.CycleWeeks.InWeeks(6), ShouldEqual, 6)
		So(model.CycleMonths.InWeeks(2), ShouldEqual, 8)
	})
}
