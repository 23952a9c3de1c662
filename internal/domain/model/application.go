package model

import (
	"time"

	"github.com/google/uuid"
)

// Candidate owns an ordered, unbounded set of positions.
type Candidate struct {
	ID             uuid.UUID
	Name           string
	OTEExpectation float64
}

// Application links one candidate to one project. Scores are derived on
// read, never stored.
type Application struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	CandidateID uuid.UUID

	// OTE is the compensation declared on the application.
	OTE       float64
	Available bool
	CreatedAt time.Time
}
