package assertion

import "errors"

var (
	// ErrUnknownType is returned for a Definition whose type
	// has no registered factory.
	ErrUnknownType = errors.New("unknown assertion type")

	// ErrAlreadyRegistered is returned when registering a type
	// twice.
	ErrAlreadyRegistered = errors.New("assertion type already registered")

	// ErrInvalidValue is returned when a Definition's
	// parameters cannot be used by its factory.
	ErrInvalidValue = errors.New("invalid assertion value")

	// ErrEmptyComposite is returned when building a composite
	// from no definitions.
	ErrEmptyComposite = errors.New("composite needs at least one assertion")
)
