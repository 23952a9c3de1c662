package mix_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/hirewire/fitrank/internal/domain/mix"
	"github.com/hirewire/fitrank/internal/domain/model"
)

func intp(v int) *int { return &v }

// completeStint builds a 100%-complete booking-meeting position covering
// one calendar year, with the mix values supplied.
func completeStint(year int, existing, newBiz, partnership, outbound, inbound, smb, mid, ent float64) model.Position {
	return model.Position{
		Employer:   model.Employer{Name: "Acme"},
		Role:       "SDR",
		StartMonth: 1,
		StartYear:  year,
		EndMonth:   intp(12),
		EndYear:    intp(year),
		Detail: &model.PositionDetail{
			IsBookingMeeting:           true,
			ExistingBusiness:           existing,
			NewBusiness:                newBiz,
			Partnership:                partnership,
			Outbound:                   outbound,
			Inbound:                    inbound,
			SegmentSMB:                 smb,
			SegmentMidMarket:           mid,
			SegmentEnterprise:          ent,
			RevenueGenerated:           100_000,
			QuotaAchievements:          95,
			AverageDealSize:            4_000,
			WorkedIn:                   []string{"saas"},
			SoldTo:                     []string{"smb"},
			Persona:                    []string{"founder"},
			Territories:                []string{"US"},
			ProspectingChannelRelevant: true,
		},
	}
}

func TestWeightedSplits(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	Convey("Given two completed positions of equal duration", t, func() {
		positions := []model.Position{
			completeStint(2020, 60, 40, 0, 80, 20, 50, 30, 20),
			completeStint(2021, 50, 25, 25, 60, 40, 70, 20, 10),
		}

		Convey("Then the business split averages and renormalizes to 100", func() {
			got := mix.Business(positions, now)

			// Raw averages 55 / 32.5 / 12.5 round to 101; the remainder
			// comes off the largest value.
			So(got.Existing, ShouldEqual, 54)
			So(got.New, ShouldEqual, 33)
			So(got.Partnership, ShouldEqual, 13)
			So(got.Existing+got.New+got.Partnership, ShouldEqual, 100)
		})

		Convey("Then the lead-source split sums to exactly 100", func() {
			got := mix.LeadSource(positions, now)

			So(got.Outbound, ShouldEqual, 70)
			So(got.Inbound, ShouldEqual, 30)
		})

		Convey("Then the segment split sums to exactly 100", func() {
			got := mix.Segments(positions, now)

			So(got.SMB+got.MidMarket+got.Enterprise, ShouldEqual, 100)
			So(got.SMB, ShouldEqual, 60)
		})
	})

	Convey("Given positions of unequal duration", t, func() {
		long := completeStint(2020, 100, 0, 0, 100, 0, 100, 0, 0)
		long.EndYear = intp(2023) // 48 months

		short := completeStint(2024, 0, 100, 0, 0, 100, 0, 100, 0) // 12 months

		got := mix.Business([]model.Position{long, short}, now)

		Convey("Then longer tenures weigh more", func() {
			So(got.Existing, ShouldEqual, 80)
			So(got.New, ShouldEqual, 20)
			So(got.Partnership, ShouldEqual, 0)
		})
	})

	Convey("Given no eligible positions", t, func() {
		incomplete := model.Position{
			StartMonth: 1, StartYear: 2020,
			Detail: &model.PositionDetail{IsBookingMeeting: true, NewBusiness: 100},
		}

		Convey("Then every split is all zeros", func() {
			So(mix.Business([]model.Position{incomplete}, now), ShouldResemble, mix.BusinessSplit{})
			So(mix.LeadSource(nil, now), ShouldResemble, mix.LeadSourceSplit{})
			So(mix.Segments(nil, now), ShouldResemble, mix.SegmentSplit{})
		})
	})
}
