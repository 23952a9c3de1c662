// Package model contains the recruiting domain records read by the engine.
// Fields mirror what the surrounding platform persists; the engine never
// mutates them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// CycleUnit is the unit a sales-cycle length is expressed in.
type CycleUnit string

// Supported sales-cycle units.
const (
	CycleWeeks  CycleUnit = "weeks"
	CycleMonths CycleUnit = "months"
)

// weeksPerMonth converts month-denominated cycles to weeks.
const weeksPerMonth = 4

// InWeeks converts a cycle length to weeks, the unit all comparisons use.
func (u CycleUnit) InWeeks(v float64) float64 {
	if u == CycleMonths {
		return v * weeksPerMonth
	}
	return v
}

// Employer identifies the company a position was held at.
type Employer struct {
	ID   uuid.UUID
	Name string
}

// Position is one stint at an employer in a candidate's career history.
// A nil end month/year pair means the position is ongoing.
type Position struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	Employer    Employer
	Role        string

	StartMonth int // 1..12, 0 when unset
	StartYear  int
	EndMonth   *int
	EndYear    *int

	Detail *PositionDetail
}

// PositionDetail is the attribute payload of a Position. It is optional;
// a Position without one never counts as complete.
type PositionDetail struct {
	IsLeadership            bool
	IsIndividualContributor bool
	IsBookingMeeting        bool

	// Segment mix, percentages summing to 100 when fully specified.
	SegmentSMB        float64
	SegmentMidMarket  float64
	SegmentEnterprise float64

	// Business mix.
	ExistingBusiness float64
	NewBusiness      float64
	Partnership      float64

	// Lead-source mix.
	Outbound float64
	Inbound  float64

	RevenueGenerated  float64
	QuotaAchievements float64

	ShortDealSize   float64
	AverageDealSize float64
	LongDealSize    float64

	ShortSalesCycle   float64
	AverageSalesCycle float64
	LongSalesCycle    float64
	SalesCycleUnit    CycleUnit

	PeopleRollingUp int

	WorkedIn     []string
	SoldTo       []string
	Persona      []string
	Territories  []string
	Management   []string
	Achievements []string

	ProspectingChannelRelevant bool
	ChannelLinkedIn            float64
	ChannelEmail               float64
	ChannelColdCall            float64
	ChannelTradeshow           float64
	ChannelReferrals           float64
}

// HasStart reports whether both start month and year are set.
func (p Position) HasStart() bool {
	return p.StartMonth >= 1 && p.StartMonth <= 12 && p.StartYear > 0
}

// Ongoing reports whether the position has no end date.
func (p Position) Ongoing() bool {
	return p.EndMonth == nil || p.EndYear == nil
}

// StartDate returns the first day of the start month.
func (p Position) StartDate() time.Time {
	return time.Date(p.StartYear, time.Month(p.StartMonth), 1, 0, 0, 0, 0, time.UTC)
}

// EndDate returns the exclusive end of the position: the first day of the
// month after the end month, or now for ongoing positions. Using an
// exclusive bound makes a Jan..Dec stint span the full twelve months.
func (p Position) EndDate(now time.Time) time.Time {
	if p.Ongoing() {
		return now
	}
	return time.Date(*p.EndYear, time.Month(*p.EndMonth)+1, 1, 0, 0, 0, 0, time.UTC)
}

// Months returns the inclusive calendar-month span of the position,
// counting the end month (or the current month for ongoing positions).
func (p Position) Months(now time.Time) int {
	if !p.HasStart() {
		return 0
	}
	endYear, endMonth := now.Year(), int(now.Month())
	if !p.Ongoing() {
		endYear, endMonth = *p.EndYear, *p.EndMonth
	}
	months := (endYear-p.StartYear)*12 + (endMonth - p.StartMonth) + 1
	if months < 0 {
		return 0
	}
	return months
}
