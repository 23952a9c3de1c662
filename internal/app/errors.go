package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNoStore    = errors.New("service requires a store")
	ErrNotStarted = errors.New("service is not started")
)
