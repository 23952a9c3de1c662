package scoring

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hirewire/fitrank/internal/domain/model"
	"github.com/hirewire/fitrank/internal/domain/tenure"
)

// oteScore compares the candidate's expectation against the declared OTE.
// Meeting the declared number scores 10; asking for more decays the score
// by the relative overshoot.
func oteScore(expectation, declared float64) float64 {
	if expectation <= declared {
		return maxDimensionScore
	}
	score := maxDimensionScore - maxDimensionScore*(expectation-declared)/expectation
	return round2(clamp(score))
}

// listOverlapScore is the deterministic rule for list dimensions: full
// credit when every target element appears in the candidate's union,
// proportional credit otherwise. An empty target list is no requirement.
func listOverlapScore(candidate, target []string) float64 {
	if len(target) == 0 {
		return maxDimensionScore
	}

	have := make(map[string]struct{}, len(candidate))
	for _, c := range candidate {
		have[c] = struct{}{}
	}

	matched := 0
	for _, t := range target {
		if _, ok := have[t]; ok {
			matched++
		}
	}

	if matched == len(target) {
		return maxDimensionScore
	}
	return round2(maxDimensionScore * float64(matched) / float64(len(target)))
}

// segmentMixScore compares the candidate's lifetime segment split against
// the project targets. Unlike the profile view this is not time-weighted:
// each segment averages over the positions with a nonzero value in it.
func segmentMixScore(positions []model.Position, project model.Project) float64 {
	segments := []struct {
		value  func(*model.PositionDetail) float64
		target float64
	}{
		{func(d *model.PositionDetail) float64 { return d.SegmentSMB }, project.SegmentSMB},
		{func(d *model.PositionDetail) float64 { return d.SegmentMidMarket }, project.SegmentMidMarket},
		{func(d *model.PositionDetail) float64 { return d.SegmentEnterprise }, project.SegmentEnterprise},
	}

	var sum float64
	for _, seg := range segments {
		var total float64
		var count int
		for _, p := range positions {
			if v := seg.value(p.Detail); v != 0 {
				total += v
				count++
			}
		}
		var have float64
		if count > 0 {
			have = total / float64(count)
		}

		switch {
		case have >= seg.target:
			sum += maxDimensionScore
		case have == 0:
			// no credit
		default:
			sum += maxDimensionScore * have / seg.target
		}
	}
	return round2(sum / float64(len(segments)))
}

// salesCycleScore compares each position's average sales cycle against the
// project minimum, keeping the best position. With a judge configured the
// whole comparison is delegated, including qualitative judgment the ratio
// rule cannot express.
func (e *Engine) salesCycleScore(ctx context.Context, positions []model.Position, project model.Project) float64 {
	if e.judge != nil {
		candidate := make([]string, 0, len(positions))
		for _, p := range positions {
			if p.Detail.AverageSalesCycle > 0 {
				candidate = append(candidate, fmt.Sprintf("average sales cycle of %.0f %s in the %q role",
					p.Detail.AverageSalesCycle, cycleUnit(p.Detail.SalesCycleUnit), p.Role))
			}
		}
		target := []string{fmt.Sprintf("minimum sales cycle of %.0f %s",
			project.MinimumSaleCycle, cycleUnit(project.SaleCycleUnit))}
		return e.judged(ctx, "sales_cycle", candidate, target,
			"sales cycle length experience, including what B2B/B2C motion and deal sizes the cycles imply")
	}

	minWeeks := project.SaleCycleUnit.InWeeks(project.MinimumSaleCycle)
	if minWeeks <= 0 {
		return maxDimensionScore
	}

	var best float64
	for _, p := range positions {
		weeks := p.Detail.SalesCycleUnit.InWeeks(p.Detail.AverageSalesCycle)
		if weeks <= 0 {
			continue
		}
		score := float64(maxDimensionScore)
		if weeks < minWeeks {
			score = round2(maxDimensionScore * weeks / minWeeks)
		}
		if score > best {
			best = score
		}
	}
	return best
}

// dealSizeScore compares the candidate's best average deal size against
// the project minimum.
func (e *Engine) dealSizeScore(ctx context.Context, positions []model.Position, project model.Project) float64 {
	if e.judge != nil {
		candidate := make([]string, 0, len(positions))
		for _, p := range positions {
			if p.Detail.AverageDealSize > 0 {
				candidate = append(candidate, fmt.Sprintf("average deal size of %.0f in the %q role",
					p.Detail.AverageDealSize, p.Role))
			}
		}
		target := []string{fmt.Sprintf("minimum deal size of %.0f", project.MinimumDealSize)}
		return e.judged(ctx, "deal_size", candidate, target,
			"deal size experience relative to the minimum the role requires")
	}

	if project.MinimumDealSize <= 0 {
		return maxDimensionScore
	}

	var best float64
	for _, p := range positions {
		if p.Detail.AverageDealSize > best {
			best = p.Detail.AverageDealSize
		}
	}
	if best <= 0 {
		return 0
	}
	return clamp(math.Ceil(maxDimensionScore * best / project.MinimumDealSize))
}

// ratioScore is the shared rule for the new-business and outbound
// dimensions: meeting the target scores 10, otherwise proportional credit
// rounded to the nearest integer.
func ratioScore(have, target float64) float64 {
	if have >= target {
		return maxDimensionScore
	}
	return math.Round(maxDimensionScore * have / target)
}

// experienceScore rates de-duplicated tenure in fractional years against
// the project's experience target. Covered months are merged as an
// explicit period-set union.
func experienceScore(positions []model.Position, targetYears float64, now time.Time) float64 {
	years := float64(tenure.UniqueMonths(positions, now)) / 12
	if years >= targetYears {
		return maxDimensionScore
	}
	return math.Round(maxDimensionScore * years / targetYears)
}

// listUnion collects the distinct entries of one list attribute across
// positions, preserving first-seen order.
func listUnion(positions []model.Position, extract func(*model.PositionDetail) []string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range positions {
		for _, v := range extract(p.Detail) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// average is the plain per-position mean of one scalar attribute.
func average(positions []model.Position, extract func(*model.PositionDetail) float64) float64 {
	if len(positions) == 0 {
		return 0
	}
	var total float64
	for _, p := range positions {
		total += extract(p.Detail)
	}
	return total / float64(len(positions))
}

func cycleUnit(u model.CycleUnit) string {
	if u == model.CycleMonths {
		return "months"
	}
	return "weeks"
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(maxDimensionScore, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
