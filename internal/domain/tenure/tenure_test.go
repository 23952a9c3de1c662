package tenure_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hirewire/fitrank/internal/domain/completion"
	"github.com/hirewire/fitrank/internal/domain/model"
	"github.com/hirewire/fitrank/internal/domain/tenure"
)

func intp(v int) *int { return &v }

func stint(startYear, startMonth int, endYear, endMonth int) model.Position {
	p := model.Position{
		Employer:   model.Employer{Name: "Acme"},
		Role:       "AE",
		StartYear:  startYear,
		StartMonth: startMonth,
	}
	if endYear > 0 {
		p.EndYear = intp(endYear)
		p.EndMonth = intp(endMonth)
	}
	return p
}

func TestTotalDays(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	Convey("Given overlapping stints", t, func() {
		positions := []model.Position{
			stint(2020, 1, 2020, 6),
			stint(2020, 4, 2020, 12),
		}

		Convey("Then overlap collapses to the union of intervals", func() {
			// Jan 2020 through Dec 2020, one leap year.
			So(tenure.TotalDays(positions, now), ShouldEqual, 366)
		})

		Convey("And the union never exceeds the naive sum", func() {
			naive := 0
			for _, p := range positions {
				naive += tenure.TotalDays([]model.Position{p}, now)
			}
			So(tenure.TotalDays(positions, now), ShouldBeLessThanOrEqualTo, naive)
		})
	})

	Convey("Given disjoint stints", t, func() {
		positions := []model.Position{
			stint(2019, 1, 2019, 12),
			stint(2021, 1, 2021, 12),
		}

		Convey("Then both spans count in full", func() {
			So(tenure.TotalDays(positions, now), ShouldEqual, 365+365)
		})
	})

	Convey("Given an ongoing stint", t, func() {
		positions := []model.Position{stint(2025, 1, 0, 0)}

		Convey("Then today is used as the end date", func() {
			// Jan 1 to Jun 1 2025.
			So(tenure.TotalDays(positions, now), ShouldEqual, 151)
		})
	})

	Convey("Given a position without a start date", t, func() {
		So(tenure.TotalDays([]model.Position{{}}, now), ShouldEqual, 0)
	})
}

func TestFormat(t *testing.T) {
	Convey("Given day totals", t, func() {
		So(tenure.Format(0), ShouldEqual, "N/A")
		So(tenure.Format(-3), ShouldEqual, "N/A")
		So(tenure.Format(10), ShouldEqual, "N/A")
		So(tenure.Format(90), ShouldEqual, "2 mo")
		So(tenure.Format(365), ShouldEqual, "1 yrs")
		So(tenure.Format(365+200), ShouldEqual, "1 yrs, 6 mo")
	})
}

func TestExperience(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	complete := stint(2020, 1, 2020, 12)
	complete.Detail = &model.PositionDetail{
		IsBookingMeeting:           true,
		SegmentSMB:                 100,
		NewBusiness:                100,
		Outbound:                   100,
		RevenueGenerated:           100_000,
		QuotaAchievements:          95,
		AverageDealSize:            4_000,
		WorkedIn:                   []string{"saas"},
		SoldTo:                     []string{"smb"},
		Persona:                    []string{"founder"},
		Territories:                []string{"US"},
		ProspectingChannelRelevant: true,
	}
	incomplete := stint(2022, 1, 2022, 12)

	Convey("Given a mixed history", t, func() {
		positions := []model.Position{complete, incomplete}

		Convey("When only completed positions count (default)", func() {
			So(tenure.Experience(positions, tenure.WithNow(now)), ShouldEqual, "1 yrs")
		})

		Convey("When incomplete positions are included", func() {
			So(tenure.Experience(positions, tenure.WithNow(now), tenure.WithIncomplete()), ShouldEqual, "2 yrs")
		})

		Convey("When filtered by archetype", func() {
			bdr := tenure.Experience(positions, tenure.WithNow(now), tenure.WithArchetype(completion.BookingMeeting))
			So(bdr, ShouldEqual, "1 yrs")

			lead := tenure.Experience(positions, tenure.WithNow(now), tenure.WithArchetype(completion.Leadership))
			So(lead, ShouldEqual, "N/A")
		})

		Convey("When there are no positions", func() {
			So(tenure.Experience(nil, tenure.WithNow(now)), ShouldEqual, "N/A")
		})
	})
}

func TestUniqueMonths(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	Convey("Given overlapping stints", t, func() {
		positions := []model.Position{
			stint(2020, 1, 2020, 6),
			stint(2020, 4, 2020, 12),
		}

		Convey("Then covered months merge into a unique set", func() {
			So(tenure.UniqueMonths(positions, now), ShouldEqual, 12)
		})
	})

	Convey("Given an ongoing stint", t, func() {
		positions := []model.Position{stint(2025, 4, 0, 0)}

		Convey("Then months run through the current one", func() {
			So(tenure.UniqueMonths(positions, now), ShouldEqual, 3)
		})
	})
}
