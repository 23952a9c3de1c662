// Package mix computes duration-weighted attribute splits across a
// candidate's completed positions. Every returned split sums to exactly
// 100 after rounding, or to all zeros when no position is eligible.
package mix

import (
	"math"
	"time"

	"github.com/hirewire/fitrank/internal/domain/completion"
	"github.com/hirewire/fitrank/internal/domain/model"
)

const total = 100

// BusinessSplit is the business-mix triple.
type BusinessSplit struct {
	Existing    int
	New         int
	Partnership int
}

// LeadSourceSplit is the lead-source pair.
type LeadSourceSplit struct {
	Outbound int
	Inbound  int
}

// SegmentSplit is the customer-segment triple.
type SegmentSplit struct {
	SMB        int
	MidMarket  int
	Enterprise int
}

// Business returns the weighted business-mix split.
func Business(positions []model.Position, now time.Time) BusinessSplit {
	v := weighted(positions, now,
		func(d *model.PositionDetail) float64 { return d.ExistingBusiness },
		func(d *model.PositionDetail) float64 { return d.NewBusiness },
		func(d *model.PositionDetail) float64 { return d.Partnership },
	)
	return BusinessSplit{Existing: v[0], New: v[1], Partnership: v[2]}
}

// LeadSource returns the weighted lead-source split.
func LeadSource(positions []model.Position, now time.Time) LeadSourceSplit {
	v := weighted(positions, now,
		func(d *model.PositionDetail) float64 { return d.Outbound },
		func(d *model.PositionDetail) float64 { return d.Inbound },
	)
	return LeadSourceSplit{Outbound: v[0], Inbound: v[1]}
}

// Segments returns the weighted customer-segment split.
func Segments(positions []model.Position, now time.Time) SegmentSplit {
	v := weighted(positions, now,
		func(d *model.PositionDetail) float64 { return d.SegmentSMB },
		func(d *model.PositionDetail) float64 { return d.SegmentMidMarket },
		func(d *model.PositionDetail) float64 { return d.SegmentEnterprise },
	)
	return SegmentSplit{SMB: v[0], MidMarket: v[1], Enterprise: v[2]}
}

// weighted accumulates duration*value per attribute over the completed
// positions, averages by total duration, rounds, and renormalizes so the
// values sum to exactly 100. The rounding remainder lands on the largest
// value; ties break toward the first-declared attribute.
func weighted(positions []model.Position, now time.Time, extract ...func(*model.PositionDetail) float64) []int {
	sums := make([]float64, len(extract))
	out := make([]int, len(extract))
	var months float64

	for _, p := range positions {
		if p.Detail == nil || !completion.IsComplete(p) {
			continue
		}
		d := float64(p.Months(now))
		if d <= 0 {
			continue
		}
		months += d
		for i, f := range extract {
			sums[i] += d * f(p.Detail)
		}
	}

	if months == 0 {
		return out
	}

	sum := 0
	for i := range sums {
		out[i] = int(math.Round(sums[i] / months))
		sum += out[i]
	}

	if diff := total - sum; diff != 0 {
		largest := 0
		for i := 1; i < len(out); i++ {
			if out[i] > out[largest] {
				largest = i
			}
		}
		out[largest] += diff
	}
	return out
}
