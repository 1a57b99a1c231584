package timeline

import "errors"

// Domain-specific errors for the timeline package.
var (
	ErrInvalidWeddingDate = errors.New("invalid wedding date")
	ErrPhaseNotFound      = errors.New("phase not found")
	ErrEmptyTodoText      = errors.New("todo text is empty")
)
