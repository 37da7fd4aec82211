package service

import "errors"

// Sentinel kinds for orchestration errors.
var (
	// ErrGroupTooLarge is returned when a selection exceeds the configured
	// per-side cap.
	ErrGroupTooLarge = errors.New("selection too large")
)
