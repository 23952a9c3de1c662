// Package service provides the core business service the surrounding
// platform embeds: it wires the configuration, semantic judge, scoring
// engine and ranking orchestrator together and exposes the candidate
// profile views.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hirewire/fitrank/internal/adapters/judge"
	"github.com/hirewire/fitrank/internal/adapters/repository"
	"github.com/hirewire/fitrank/internal/config"
	"github.com/hirewire/fitrank/internal/domain/completion"
	"github.com/hirewire/fitrank/internal/domain/grouping"
	"github.com/hirewire/fitrank/internal/domain/mix"
	"github.com/hirewire/fitrank/internal/domain/model"
	"github.com/hirewire/fitrank/internal/domain/ranking"
	"github.com/hirewire/fitrank/internal/domain/scoring"
	"github.com/hirewire/fitrank/internal/domain/tenure"
	"github.com/hirewire/fitrank/pkg/logger"
)

// Profile is the candidate-profile view: career history grouped by
// employer plus the normalized experience metrics.
type Profile struct {
	Groups []grouping.Group

	Business   mix.BusinessSplit
	LeadSource mix.LeadSourceSplit
	Segments   mix.SegmentSplit

	TotalExperience       string
	LeadershipExperience  string
	ContributorExperience string
	BookingExperience     string
}

// Service wires the fit scoring and ranking engine.
type Service struct {
	mu sync.Mutex

	cfg    *config.Config
	store  repository.Store
	judge  judge.Judge
	engine *scoring.Engine
	ranker *ranking.Orchestrator

	started bool
	logger  logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the profile/project store; required before Start.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithJudge overrides the semantic judgment collaborator; without it one
// is built from config when enabled.
func WithJudge(j judge.Judge) Option {
	return func(s *Service) {
		s.judge = j
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service from configuration.
func New(cfg *config.Config, opts ...Option) *Service {
	s := &Service{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the engine components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.store == nil {
		return ErrNoStore
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	if s.judge == nil && s.cfg.JudgeEnabled {
		j, err := judge.NewGemini(ctx, s.cfg.GeminiAPIKey, s.cfg.GeminiModel)
		if err != nil {
			return err
		}
		s.judge = j
		s.logger.Info(ctx, "semantic judge enabled", logger.String("model", s.cfg.GeminiModel))
	}

	engineOpts := []scoring.Option{
		scoring.WithJudgeTimeout(time.Duration(s.cfg.JudgeTimeoutMS) * time.Millisecond),
	}
	if s.judge != nil {
		engineOpts = append(engineOpts, scoring.WithJudge(s.judge))
	}
	s.engine = scoring.New(engineOpts...)

	s.ranker = ranking.New(s.store, s.engine,
		ranking.WithWidth(s.cfg.ScoringWidth),
		ranking.WithThreshold(s.cfg.AboveThreshold),
	)

	s.started = true
	s.logger.Info(ctx, "fit scoring service started",
		logger.Int("scoringWidth", s.cfg.ScoringWidth),
		logger.Int("aboveThreshold", s.cfg.AboveThreshold),
		logger.Bool("judge", s.judge != nil),
	)
	return nil
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "fit scoring service stopped")
}

// RankProject scores every application of a project and returns the
// annotated list with summary counts.
func (s *Service) RankProject(ctx context.Context, projectID, requesterOrg uuid.UUID, window ranking.Window) (ranking.Result, error) {
	if !s.isStarted() {
		return ranking.Result{}, ErrNotStarted
	}
	return s.ranker.Rank(ctx, projectID, requesterOrg, window)
}

// CandidateProfile builds the profile view for one candidate.
func (s *Service) CandidateProfile(ctx context.Context, candidateID uuid.UUID) (Profile, error) {
	if !s.isStarted() {
		return Profile{}, ErrNotStarted
	}

	if _, err := s.store.Candidate(ctx, candidateID); err != nil {
		return Profile{}, err
	}
	positions, err := s.store.Positions(ctx, candidateID)
	if err != nil {
		return Profile{}, err
	}

	now := time.Now().UTC()
	return Profile{
		Groups:               grouping.ByEmployer(positions, now),
		Business:             mix.Business(positions, now),
		LeadSource:           mix.LeadSource(positions, now),
		Segments:             mix.Segments(positions, now),
		TotalExperience:       tenure.Experience(positions, tenure.WithNow(now)),
		LeadershipExperience:  tenure.Experience(positions, tenure.WithNow(now), tenure.WithArchetype(completion.Leadership)),
		ContributorExperience: tenure.Experience(positions, tenure.WithNow(now), tenure.WithArchetype(completion.IndividualContributor)),
		BookingExperience:     tenure.Experience(positions, tenure.WithNow(now), tenure.WithArchetype(completion.BookingMeeting)),
	}, nil
}

// CompletionOf returns the completion percentage of one position.
func (s *Service) CompletionOf(p model.Position) float64 {
	return completion.Percentage(p)
}

func (s *Service) isStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}
