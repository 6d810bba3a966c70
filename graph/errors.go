package graph

import "errors"

var (
	// A locations or roads source could not be opened or read.
	ErrSourceUnavailable = errors.New("graph: data source unavailable")
	// A roads source contained a token that is not part of a valid triple.
	ErrMalformedInput = errors.New("graph: malformed input")
)
