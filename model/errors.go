package model

import "errors"

var (
	// ErrInvalidTimestep is returned by New when the timestep daily
	// fraction exceeds 1 (sub-daily or daily steps only).
	ErrInvalidTimestep = errors.New("model: timestep daily fraction must be less than or equal to 1")

	// ErrAlreadyRun is returned by Run on a second invocation; storages are
	// mutated in place, so a rerun needs a fresh instance.
	ErrAlreadyRun = errors.New("model: already run; construct a new Topmodel per run")
)
