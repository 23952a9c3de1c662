package grouping_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hirewire/fitrank/internal/domain/grouping"
	"github.com/hirewire/fitrank/internal/domain/model"
)

func intp(v int) *int { return &v }

func TestByEmployer(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	acme := model.Employer{Name: "Acme"}
	globex := model.Employer{Name: "Globex"}

	acmeOld := model.Position{
		Employer: acme, Role: "SDR",
		StartMonth: 1, StartYear: 2018,
		EndMonth: intp(12), EndYear: intp(2019),
	}
	acmeCurrent := model.Position{
		Employer: acme, Role: "AE",
		StartMonth: 1, StartYear: 2020,
	}
	globexClosed := model.Position{
		Employer: globex, Role: "AE",
		StartMonth: 6, StartYear: 2021,
		EndMonth: intp(6), EndYear: intp(2023),
	}

	Convey("Given positions at two employers", t, func() {
		groups := grouping.ByEmployer([]model.Position{acmeOld, globexClosed, acmeCurrent}, now)

		Convey("Then positions group by employer identity", func() {
			So(groups, ShouldHaveLength, 2)
		})

		Convey("Then groups order by their lead position's start, descending", func() {
			So(groups[0].Employer, ShouldResemble, globex)
			So(groups[1].Employer, ShouldResemble, acme)
		})

		Convey("Then ongoing positions lead their group", func() {
			acmeGroup := groups[1]
			So(acmeGroup.Positions[0].Role, ShouldEqual, "AE")
			So(acmeGroup.Positions[1].Role, ShouldEqual, "SDR")
		})

		Convey("Then each group carries tenure counting incomplete positions", func() {
			// Acme: 2018-2019 closed plus 2020-now ongoing.
			So(groups[1].TotalExperience, ShouldEqual, "7 yrs, 5 mo")
			So(groups[0].TotalExperience, ShouldEqual, "2 yrs")
		})
	})

	Convey("Given no positions", t, func() {
		So(grouping.ByEmployer(nil, now), ShouldBeEmpty)
	})
}
