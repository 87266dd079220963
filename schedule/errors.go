package schedule

import "errors"

// Hard input errors. Everything else the engine degrades into empty results or
// low scores so the caller always has something to render.
var (
	ErrInvalidConstraint = errors.New("invalid scheduling constraint")
	ErrInvalidInterval   = errors.New("invalid time interval")
)
