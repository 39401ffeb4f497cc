package internalerr

import "errors"

// Sentinel errors for translation failures
var (
	ErrUnrecognizedFact    = errors.New("unrecognized fact pattern")
	ErrMalformedRule       = errors.New("malformed rule")
	ErrAmbiguousSeparator  = errors.New("ambiguous rule separator")
	ErrUnsupportedQuery    = errors.New("unsupported query type")
	ErrEmptyNormalization  = errors.New("empty normalization result")
	ErrUnboundHeadVariable = errors.New("unbound head variable")
)
