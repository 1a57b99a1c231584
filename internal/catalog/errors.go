package catalog

import "errors"

var (
	ErrNoKeywords       = errors.New("category has no keywords")
	ErrNegativeLead     = errors.New("category min lead months is negative")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrPhaseRange       = errors.New("phase start months must be >= end months >= 0")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrUnknownTaskPhase = errors.New("standard task references unknown phase")
	ErrEmptyName        = errors.New("name is required")
)
