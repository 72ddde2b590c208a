package extract

import "errors"

var (
	// ErrMalformedDocument indicates the container could not be parsed.
	// The wrapped cause names the underlying parser failure.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrUnsupportedKind indicates an unknown document kind was dispatched.
	// Callers are expected to validate the kind before extraction.
	ErrUnsupportedKind = errors.New("unsupported document kind")
)
