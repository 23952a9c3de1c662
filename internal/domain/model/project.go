package model

import "github.com/google/uuid"

// Project is an employer's job-requirement record that applications are
// scored against. Mix targets conceptually sum to 100 per group.
type Project struct {
	ID    uuid.UUID
	OrgID uuid.UUID
	Name  string

	// Experience is the target tenure in years.
	Experience float64

	OTEStart float64
	OTEEnd   float64

	SegmentSMB        float64
	SegmentMidMarket  float64
	SegmentEnterprise float64

	InboundRange  float64
	OutboundRange float64

	// BusinessRange is the new-business target; the naming follows the
	// platform's project schema.
	BusinessRange         float64
	ExistingBusinessRange float64
	PartnershipRange      float64

	MinimumDealSize  float64
	MinimumSaleCycle float64
	SaleCycleUnit    CycleUnit

	IndustryWorkedIn []string
	IndustrySoldTo   []string
	SelectedPersona  []string
}
