// Package ranking orchestrates project-level scoring: it loads a
// project's applications, filters each candidate's history, scores every
// application concurrently and returns the annotated list with summary
// counts.
package ranking

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hirewire/fitrank/internal/adapters/repository"
	"github.com/hirewire/fitrank/internal/domain/completion"
	"github.com/hirewire/fitrank/internal/domain/model"
	"github.com/hirewire/fitrank/internal/domain/scoring"
	"github.com/hirewire/fitrank/pkg/logger"
	"github.com/hirewire/fitrank/pkg/metrics"
)

// Applications scoring at or above this percentage count as strong fits.
const defaultThreshold = 75

// Window restricts positions to the last N years; zero means unrestricted.
type Window int

// Recency windows offered by the platform.
const (
	WindowAll Window = 0
	WindowMax Window = 5
)

// RankedApplication is one scored application in a ranking.
type RankedApplication struct {
	Application model.Application
	Candidate   model.Candidate
	Scorecard   scoring.Scorecard
}

// Result is the outcome of ranking one project. The list is unordered by
// score; ordering is a presentation concern.
type Result struct {
	Applications   []RankedApplication
	AboveThreshold int
	Visitors       int
}

// Orchestrator ranks a project's applications.
type Orchestrator struct {
	store     repository.Store
	engine    *scoring.Engine
	logger    logger.Logger
	width     int
	threshold int
	now       func() time.Time
}

// Option applies a configuration option to the Orchestrator.
type Option func(*Orchestrator)

// WithWidth bounds how many applications are scored concurrently.
func WithWidth(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.width = n
		}
	}
}

// WithThreshold overrides the above-threshold cutoff percentage.
func WithThreshold(pct int) Option {
	return func(o *Orchestrator) {
		if pct >= 0 && pct <= 100 {
			o.threshold = pct
		}
	}
}

// WithLogger sets a custom logger for the orchestrator.
func WithLogger(l logger.Logger) Option {
	return func(o *Orchestrator) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithNow fixes the clock used for the recency window.
func WithNow(now func() time.Time) Option {
	return func(o *Orchestrator) {
		if now != nil {
			o.now = now
		}
	}
}

// New constructs an Orchestrator over a store and a scoring engine.
func New(store repository.Store, engine *scoring.Engine, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:     store,
		engine:    engine,
		width:     runtime.NumCPU() * 2,
		threshold: defaultThreshold,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.Named("ranking")
	}
	return o
}

// Rank scores every application of a project. The requester must belong
// to the project's owning organization. One application failing to score
// degrades to a zero scorecard; only project lookup and authorization
// failures abort the ranking.
func (o *Orchestrator) Rank(ctx context.Context, projectID, requesterOrg uuid.UUID, window Window) (Result, error) {
	started := time.Now()

	project, err := o.store.Project(ctx, projectID)
	if err != nil {
		return Result{}, fmt.Errorf("load project: %w", err)
	}
	if project.OrgID != requesterOrg {
		return Result{}, ErrNotAuthorized
	}

	apps, err := o.store.Applications(ctx, projectID)
	if err != nil {
		return Result{}, fmt.Errorf("load applications: %w", err)
	}

	now := o.now()
	ranked := make([]RankedApplication, len(apps))

	var wg sync.WaitGroup
	sem := make(chan struct{}, o.width)
	for i, app := range apps {
		wg.Add(1)
		go func(i int, app model.Application) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			ranked[i] = o.score(ctx, app, project, window, now)
		}(i, app)
	}
	wg.Wait()

	above := 0
	for _, r := range ranked {
		if r.Scorecard.Percentage >= o.threshold {
			above++
		}
	}

	visitors, err := o.store.VisitorCount(ctx, projectID)
	if err != nil {
		// Summary-only data; the ranking still stands.
		o.logger.Warn(ctx, "visitor count unavailable", logger.Error(err))
		visitors = 0
	}

	metrics.RecordRank(time.Since(started), len(ranked), above)
	return Result{
		Applications:   ranked,
		AboveThreshold: above,
		Visitors:       visitors,
	}, nil
}

// score evaluates one application, degrading to a zero scorecard on any
// failure so one bad application never sinks the ranking.
func (o *Orchestrator) score(ctx context.Context, app model.Application, project model.Project, window Window, now time.Time) RankedApplication {
	out := RankedApplication{Application: app}

	candidate, err := o.store.Candidate(ctx, app.CandidateID)
	if err != nil {
		metrics.RecordScoringError()
		o.logger.Error(ctx, "candidate lookup failed, application scored 0",
			logger.String("application", app.ID.String()),
			logger.Error(err),
		)
		return out
	}
	out.Candidate = candidate

	positions, err := o.store.Positions(ctx, app.CandidateID)
	if err != nil {
		metrics.RecordScoringError()
		o.logger.Error(ctx, "position lookup failed, application scored 0",
			logger.String("application", app.ID.String()),
			logger.Error(err),
		)
		return out
	}

	out.Scorecard = o.engine.Score(ctx, scoring.Input{
		Positions:   filterPositions(positions, window, now),
		Project:     project,
		DeclaredOTE: app.OTE,
		Expectation: candidate.OTEExpectation,
	})
	return out
}

// filterPositions keeps positions inside the recency window and complete
// per the completion calculator. The engine re-checks completion; the
// recency cut is ranking-only.
func filterPositions(positions []model.Position, window Window, now time.Time) []model.Position {
	threshold := time.Time{}
	if window > 0 {
		threshold = now.AddDate(-int(window), 0, 0)
	}

	out := make([]model.Position, 0, len(positions))
	for _, p := range positions {
		if !p.HasStart() {
			continue
		}
		if !threshold.IsZero() && p.EndDate(now).Before(threshold) {
			continue
		}
		if !completion.IsComplete(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}
