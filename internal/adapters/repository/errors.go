package repository

import "errors"

// Sentinel kinds for session store errors.
var (
	// ErrNoRoster is returned for roster-dependent reads before any table
	// has been ingested.
	ErrNoRoster = errors.New("no roster ingested")
)
