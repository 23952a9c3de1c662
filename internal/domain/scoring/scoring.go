// Package scoring computes how well one application fits a project's
// requirements, along ten independent dimensions bounded to [0,10].
package scoring

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/hirewire/fitrank/internal/adapters/judge"
	"github.com/hirewire/fitrank/internal/domain/completion"
	"github.com/hirewire/fitrank/internal/domain/model"
	"github.com/hirewire/fitrank/pkg/logger"
	"github.com/hirewire/fitrank/pkg/metrics"
)

const (
	maxDimensionScore = 10
	maxPercentage     = 100

	defaultJudgeTimeout = 15 * time.Second
)

// Input carries everything needed to score one application.
type Input struct {
	Positions []model.Position
	Project   model.Project

	// DeclaredOTE is the compensation declared on the application;
	// Expectation is the candidate's own OTE expectation.
	DeclaredOTE float64
	Expectation float64
}

// Scorecard holds the ten dimension scores and the aggregate percentage.
type Scorecard struct {
	OTE              float64
	IndustryWorkedIn float64
	IndustrySoldTo   float64
	SegmentMix       float64
	SalesCycle       float64
	DealSize         float64
	NewBusiness      float64
	Outbound         float64
	Persona          float64
	Experience       float64

	Percentage int
}

// Engine scores applications. A nil judge makes every dimension use its
// deterministic rule; with a judge configured the industry, sales-cycle
// and deal-size dimensions delegate to it and degrade to 0 on failure.
type Engine struct {
	judge        judge.Judge
	judgeTimeout time.Duration
	now          func() time.Time
	logger       logger.Logger
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithJudge sets the semantic judgment collaborator.
func WithJudge(j judge.Judge) Option {
	return func(e *Engine) {
		e.judge = j
	}
}

// WithJudgeTimeout bounds each semantic judge call.
func WithJudgeTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.judgeTimeout = d
		}
	}
}

// WithNow fixes the clock used for ongoing positions.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithLogger sets a custom logger for the engine.
func WithLogger(l logger.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New constructs an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		judgeTimeout: defaultJudgeTimeout,
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logger.Named("scoring")
	}
	return e
}

// Score computes the scorecard for one application. Only 100%-complete
// positions participate; a candidate with none yields an all-zero card.
// The dimensions are independent, so they run as one goroutine each and
// a failure degrades only its own dimension.
func (e *Engine) Score(ctx context.Context, in Input) Scorecard {
	started := time.Now()
	defer func() {
		metrics.RecordApplicationScored(time.Since(started))
	}()

	eligible := make([]model.Position, 0, len(in.Positions))
	for _, p := range in.Positions {
		if completion.IsComplete(p) {
			eligible = append(eligible, p)
		}
	}

	var card Scorecard
	if len(eligible) == 0 {
		return card
	}

	now := e.now()

	var wg sync.WaitGroup
	run := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}

	run(func() { card.OTE = oteScore(in.Expectation, in.DeclaredOTE) })
	run(func() {
		card.IndustryWorkedIn = e.judged(ctx, "industry_worked_in",
			listUnion(eligible, func(d *model.PositionDetail) []string { return d.WorkedIn }),
			in.Project.IndustryWorkedIn,
			"industries the candidate has worked in versus the industries the role requires")
	})
	run(func() {
		card.IndustrySoldTo = e.judged(ctx, "industry_sold_to",
			listUnion(eligible, func(d *model.PositionDetail) []string { return d.SoldTo }),
			in.Project.IndustrySoldTo,
			"industries the candidate has sold into versus the industries the role requires")
	})
	run(func() { card.SegmentMix = segmentMixScore(eligible, in.Project) })
	run(func() { card.SalesCycle = e.salesCycleScore(ctx, eligible, in.Project) })
	run(func() { card.DealSize = e.dealSizeScore(ctx, eligible, in.Project) })
	run(func() {
		card.NewBusiness = ratioScore(average(eligible, func(d *model.PositionDetail) float64 { return d.NewBusiness }), in.Project.BusinessRange)
	})
	run(func() {
		card.Outbound = ratioScore(average(eligible, func(d *model.PositionDetail) float64 { return d.Outbound }), in.Project.OutboundRange)
	})
	run(func() {
		card.Persona = listOverlapScore(
			listUnion(eligible, func(d *model.PositionDetail) []string { return d.Persona }),
			in.Project.SelectedPersona)
	})
	run(func() { card.Experience = experienceScore(eligible, in.Project.Experience, now) })

	wg.Wait()

	card.Percentage = percentage(card)
	return card
}

// percentage sums the ten dimension scores into a 0..100 aggregate.
func percentage(c Scorecard) int {
	sum := c.OTE + c.IndustryWorkedIn + c.IndustrySoldTo + c.SegmentMix +
		c.SalesCycle + c.DealSize + c.NewBusiness + c.Outbound +
		c.Persona + c.Experience

	pct := int(math.Round(sum))
	if pct > maxPercentage {
		pct = maxPercentage
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// judged delegates a list comparison to the semantic judge when one is
// configured, falling back to the deterministic overlap rule otherwise.
// Judge failure zeroes the dimension without aborting siblings.
func (e *Engine) judged(ctx context.Context, dimension string, candidate, target []string, hint string) float64 {
	if e.judge == nil {
		return listOverlapScore(candidate, target)
	}

	judgeCtx, cancel := context.WithTimeout(ctx, e.judgeTimeout)
	defer cancel()

	started := time.Now()
	score, err := e.judge.Compare(judgeCtx, candidate, target, hint)
	metrics.RecordJudgeCall(dimension, time.Since(started))
	if err != nil {
		metrics.RecordJudgeFailure(dimension)
		e.logger.Warn(ctx, "semantic judge failed, dimension scored 0",
			logger.String("dimension", dimension),
			logger.Error(err),
		)
		return 0
	}
	return float64(score)
}
