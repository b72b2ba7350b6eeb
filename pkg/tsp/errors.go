package tsp

import "errors"

// Sentinel errors for instance parsing
var (
	ErrInvalidHeader     = errors.New("invalid header")
	ErrMalformedPoint    = errors.New("malformed point")
	ErrTruncatedInstance = errors.New("truncated instance")
)
