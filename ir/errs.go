package ir

import "errors"

var (
	// ErrMalformed is wrapped by every parse-side failure. There is no
	// finer-grained error taxonomy: a single grammar violation aborts the
	// whole parse and the diagnostic names the offending construct.
	ErrMalformed = errors.New("malformed json")
)
