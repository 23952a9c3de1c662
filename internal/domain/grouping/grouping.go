// Package grouping arranges a candidate's positions by employer for
// profile display.
package grouping

import (
	"sort"
	"time"

	"github.com/hirewire/fitrank/internal/domain/model"
	"github.com/hirewire/fitrank/internal/domain/tenure"
)

// Group is one employer's slice of a candidate's history.
type Group struct {
	Employer  model.Employer
	Positions []model.Position

	// TotalExperience is the employer's de-duplicated tenure, counting
	// incomplete positions as well.
	TotalExperience string
}

// ByEmployer groups positions by employer identity, orders each group with
// ongoing positions first and then by start date descending, and orders
// the groups by their lead position's start date descending.
func ByEmployer(positions []model.Position, now time.Time) []Group {
	byEmployer := make(map[model.Employer][]model.Position)
	order := make([]model.Employer, 0)
	for _, p := range positions {
		if _, ok := byEmployer[p.Employer]; !ok {
			order = append(order, p.Employer)
		}
		byEmployer[p.Employer] = append(byEmployer[p.Employer], p)
	}

	groups := make([]Group, 0, len(order))
	for _, e := range order {
		ps := byEmployer[e]
		sort.SliceStable(ps, func(i, j int) bool {
			if ps[i].Ongoing() != ps[j].Ongoing() {
				return ps[i].Ongoing()
			}
			return ps[i].StartDate().After(ps[j].StartDate())
		})
		groups = append(groups, Group{
			Employer:        e,
			Positions:       ps,
			TotalExperience: tenure.Experience(ps, tenure.WithIncomplete(), tenure.WithNow(now)),
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Positions[0].StartDate().After(groups[j].Positions[0].StartDate())
	})
	return groups
}
