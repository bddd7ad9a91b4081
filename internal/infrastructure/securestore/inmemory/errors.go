package inmemory

import "errors"

var (
	// ErrMissingKey ...
	ErrMissingKey = errors.New("missing data key")
)
