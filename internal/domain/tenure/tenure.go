// Package tenure aggregates career-history durations. Overlapping stints
// are collapsed so the timeline is treated as a union of intervals, not a
// sum of interval lengths.
package tenure

import (
	"fmt"
	"sort"
	"time"

	"github.com/hirewire/fitrank/internal/domain/completion"
	"github.com/hirewire/fitrank/internal/domain/model"
)

// Calendar conversion constants for rendering day totals.
const (
	daysPerYear  = 365
	daysPerMonth = 30.44
)

type options struct {
	archetype         completion.Archetype
	includeIncomplete bool
	now               time.Time
}

// Option applies a configuration option to an Experience calculation.
type Option func(*options)

// WithArchetype restricts the calculation to positions of one archetype.
func WithArchetype(a completion.Archetype) Option {
	return func(o *options) {
		o.archetype = a
	}
}

// WithIncomplete includes positions that are not 100% complete.
func WithIncomplete() Option {
	return func(o *options) {
		o.includeIncomplete = true
	}
}

// WithNow fixes the clock used for ongoing positions.
func WithNow(t time.Time) Option {
	return func(o *options) {
		if !t.IsZero() {
			o.now = t
		}
	}
}

// Experience renders the candidate's de-duplicated tenure across the given
// positions as a human string: "N mo", "Y yrs", "Y yrs, M mo" or "N/A".
// By default only 100%-complete positions count.
func Experience(positions []model.Position, opts ...Option) string {
	o := &options{now: time.Now().UTC()}
	for _, opt := range opts {
		opt(o)
	}

	eligible := make([]model.Position, 0, len(positions))
	for _, p := range positions {
		if !o.includeIncomplete && !completion.IsComplete(p) {
			continue
		}
		if o.archetype != completion.None && completion.ArchetypeOf(p.Detail) != o.archetype {
			continue
		}
		eligible = append(eligible, p)
	}

	return Format(TotalDays(eligible, o.now))
}

// TotalDays folds the positions into a union of day intervals: sorted by
// start, each position adds its full span when it starts at or after the
// running maximum end date, and only the days beyond that maximum when it
// overlaps an earlier stint.
func TotalDays(positions []model.Position, now time.Time) int {
	sorted := make([]model.Position, 0, len(positions))
	for _, p := range positions {
		if p.HasStart() {
			sorted = append(sorted, p)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDate().Before(sorted[j].StartDate())
	})

	var days int
	var maxEnd time.Time
	for _, p := range sorted {
		start := p.StartDate()
		end := p.EndDate(now)
		if !end.After(start) {
			continue
		}
		switch {
		case maxEnd.IsZero() || !start.Before(maxEnd):
			days += daysBetween(start, end)
			maxEnd = end
		case end.After(maxEnd):
			days += daysBetween(maxEnd, end)
			maxEnd = end
		}
	}
	return days
}

// Format renders a day count. Zero or negative durations render as "N/A".
func Format(days int) string {
	if days <= 0 {
		return "N/A"
	}

	years := days / daysPerYear
	months := int(float64(days%daysPerYear) / daysPerMonth)

	switch {
	case years > 0 && months > 0:
		return fmt.Sprintf("%d yrs, %d mo", years, months)
	case years > 0:
		return fmt.Sprintf("%d yrs", years)
	case months > 0:
		return fmt.Sprintf("%d mo", months)
	default:
		return "N/A"
	}
}

// UniqueMonths counts the distinct year-month buckets covered by any of
// the positions. Fractional-year tenure for scoring divides this by 12.
func UniqueMonths(positions []model.Position, now time.Time) int {
	seen := make(map[int]struct{})
	for _, p := range positions {
		if !p.HasStart() {
			continue
		}
		endYear, endMonth := now.Year(), int(now.Month())
		if !p.Ongoing() {
			endYear, endMonth = *p.EndYear, *p.EndMonth
		}
		for y, m := p.StartYear, p.StartMonth; y < endYear || (y == endYear && m <= endMonth); {
			seen[y*12+m] = struct{}{}
			m++
			if m > 12 {
				m = 1
				y++
			}
		}
	}
	return len(seen)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
