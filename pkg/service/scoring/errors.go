package scoring

import "errors"

// Validation errors. These are surfaced directly to the caller and never
// coerced into zero-valued results.
var (
	ErrNoJurisdictions     = errors.New("at least one jurisdiction is required")
	ErrInvalidLimit        = errors.New("policy limit must be positive")
	ErrInvalidBaseRate     = errors.New("base rate must be positive")
	ErrInvalidScore        = errors.New("MRS must be within [0,100]")
	ErrUnknownJurisdiction = errors.New("unknown jurisdiction")
)
