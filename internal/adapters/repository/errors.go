package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrCandidateNotFound = errors.New("candidate not found")
)
