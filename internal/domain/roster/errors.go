package roster

import "errors"

// Sentinel kinds for roster ingestion errors.
var (
	// ErrFormat marks a table the DSV reader could not parse at all.
	ErrFormat = errors.New("unparseable table")
	// ErrValidation marks a parseable table that carries no usable roster
	// data (missing required columns or no numeric scores).
	ErrValidation = errors.New("invalid roster")
)
