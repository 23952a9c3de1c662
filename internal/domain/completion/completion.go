// Package completion decides how complete a career-history record is.
//
// Each position is classified into exactly one role archetype; the
// archetype fixes the set of fields expected on the record, and the
// completion percentage is the populated fraction of that set.
package completion

import (
	"math"

	"github.com/hirewire/fitrank/internal/domain/model"
)

// Archetype is the role shape of a position.
type Archetype int

// Archetypes, in precedence order. A position with several flags set
// resolves to the first matching archetype; this mirrors the platform's
// historical flag ordering and must not be reordered silently.
const (
	None Archetype = iota
	Leadership
	IndividualContributor
	BookingMeeting
)

// Expected-field counts per archetype.
const (
	leadershipFields            = 21
	individualContributorFields = 20
	bookingMeetingFields        = 15
)

func (a Archetype) String() string {
	switch a {
	case Leadership:
		return "leadership"
	case IndividualContributor:
		return "individual_contributor"
	case BookingMeeting:
		return "booking_meeting"
	default:
		return "none"
	}
}

// ArchetypeOf derives the archetype from the detail flags, first match wins.
func ArchetypeOf(d *model.PositionDetail) Archetype {
	switch {
	case d == nil:
		return None
	case d.IsLeadership:
		return Leadership
	case d.IsIndividualContributor:
		return IndividualContributor
	case d.IsBookingMeeting:
		return BookingMeeting
	default:
		return None
	}
}

// Percentage returns the completion percentage of a position in [0,100],
// rounded to two decimals. A position without a detail record, or whose
// detail matches no archetype, scores 0.
func Percentage(p model.Position) float64 {
	d := p.Detail
	arch := ArchetypeOf(d)
	if arch == None {
		return 0
	}

	// The archetype flag itself is the first populated field.
	count := 1
	if p.Employer.Name != "" {
		count++
	}
	if p.Role != "" {
		count++
	}

	count += populatedScalars(d, arch)
	count += populatedLists(d, arch)

	if d.SegmentSMB != 0 || d.SegmentMidMarket != 0 || d.SegmentEnterprise != 0 {
		count++
	}
	if d.ExistingBusiness != 0 || d.NewBusiness != 0 {
		count++
	}
	if p.HasStart() {
		count++
	}
	if d.Outbound != 0 || d.Inbound != 0 {
		count++
	}
	if arch != Leadership && prospectingBlockSet(d) {
		count++
	}

	denom := denominator(arch)
	return math.Round(float64(count)/float64(denom)*100*100) / 100
}

// IsComplete reports whether every expected field of the position's
// archetype is populated.
func IsComplete(p model.Position) bool {
	return Percentage(p) == 100
}

func denominator(a Archetype) int {
	switch a {
	case Leadership:
		return leadershipFields
	case IndividualContributor:
		return individualContributorFields
	default:
		return bookingMeetingFields
	}
}

func populatedScalars(d *model.PositionDetail, a Archetype) int {
	var scalars []float64
	switch a {
	case Leadership:
		scalars = []float64{
			d.QuotaAchievements,
			d.ShortDealSize, d.AverageDealSize, d.LongDealSize,
			d.ShortSalesCycle, d.AverageSalesCycle, d.LongSalesCycle,
			float64(d.PeopleRollingUp),
			d.RevenueGenerated,
		}
	case IndividualContributor:
		scalars = []float64{
			d.QuotaAchievements,
			d.ShortDealSize, d.AverageDealSize, d.LongDealSize,
			d.ShortSalesCycle, d.AverageSalesCycle, d.LongSalesCycle,
			d.RevenueGenerated,
		}
	default:
		scalars = []float64{
			d.QuotaAchievements,
			d.RevenueGenerated,
			d.AverageDealSize,
		}
	}

	count := 0
	for _, v := range scalars {
		if v != 0 {
			count++
		}
	}
	return count
}

func populatedLists(d *model.PositionDetail, a Archetype) int {
	lists := [][]string{d.WorkedIn, d.SoldTo, d.Persona, d.Territories}
	if a == Leadership {
		lists = append(lists, d.Management)
	}

	count := 0
	for _, l := range lists {
		if len(l) > 0 {
			count++
		}
	}
	return count
}

// prospectingBlockSet counts the prospecting-channel block for the
// individual-contributor and booking-meeting archetypes: a relevant flag
// always counts, an irrelevant one only when a channel split was entered.
func prospectingBlockSet(d *model.PositionDetail) bool {
	if d.ProspectingChannelRelevant {
		return true
	}
	return d.ChannelLinkedIn != 0 || d.ChannelEmail != 0 || d.ChannelColdCall != 0 ||
		d.ChannelTradeshow != 0 || d.ChannelReferrals != 0
}
