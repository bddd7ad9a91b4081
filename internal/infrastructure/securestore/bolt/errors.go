package boltstore

import "errors"

var (
	// ErrMissingKey ...
	ErrMissingKey = errors.New("missing data key")
	// ErrBucketNotFound is returned if the store bucket is missing, which
	// happens only if the db file has been corrupted.
	ErrBucketNotFound = errors.New("secure store bucket not found")
)
