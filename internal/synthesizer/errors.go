package synthesizer

import "errors"

var (
	ErrNoSuccessfulUnits = errors.New("no successful units to merge")
	ErrMergePrimary      = errors.New("primary merge failed")
	ErrMalformedPartial  = errors.New("malformed partial")
)
