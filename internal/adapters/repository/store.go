// Package repository defines read-only access to the recruiting records
// the engine consumes. The surrounding platform owns persistence; the
// engine never mutates these records.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/hirewire/fitrank/internal/domain/model"
)

// Store provides the entity reads the engine needs.
type Store interface {
	// Project returns one project. Returns ErrProjectNotFound if unknown.
	Project(ctx context.Context, id uuid.UUID) (model.Project, error)

	// Applications returns all applications submitted against a project.
	Applications(ctx context.Context, projectID uuid.UUID) ([]model.Application, error)

	// Candidate returns one candidate. Returns ErrCandidateNotFound if unknown.
	Candidate(ctx context.Context, id uuid.UUID) (model.Candidate, error)

	// Positions returns a candidate's full career history.
	Positions(ctx context.Context, candidateID uuid.UUID) ([]model.Position, error)

	// VisitorCount returns the number of profile visitors recorded for a project.
	VisitorCount(ctx context.Context, projectID uuid.UUID) (int, error)
}
