package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent configuration and evaluation failures.
// Numeric degradation during the adaptive size search is not an error;
// see DistributionResult.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity with the same ID already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotImplemented indicates a required port was not configured.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingRequiredParameter indicates a required parameter (e.g. e1 or mu)
	// is absent at construction or evaluation time.
	ErrMissingRequiredParameter = errors.New("missing required parameter")

	// ErrUnknownSymmetryClass indicates a Laue label or class id that is not registered.
	ErrUnknownSymmetryClass = errors.New("unknown symmetry class")

	// ErrInvalidWeight indicates the secondary wavelength weights sum to 1 or more,
	// leaving no weight for the principal wavelength.
	ErrInvalidWeight = errors.New("weight of principal wavelength is <= 0")

	// ErrInactiveCoefficient indicates a strain coefficient that the symmetry
	// class does not use.
	ErrInactiveCoefficient = errors.New("coefficient not active for symmetry class")

	// ErrDerivedParameter indicates an attempt to set a parameter whose value
	// is derived from another parameter.
	ErrDerivedParameter = errors.New("parameter is derived")

	// ErrOutOfBounds indicates a value outside a parameter's boundary.
	ErrOutOfBounds = errors.New("value out of bounds")

	// ErrUnsupportedModel indicates an operation the model family does not define.
	ErrUnsupportedModel = errors.New("unsupported model")

	// ErrInvalidDomain indicates an empty or inverted sampling domain.
	ErrInvalidDomain = errors.New("invalid sampling domain")
)

// missing wraps ErrMissingRequiredParameter with the parameter's role.
func missing(what string) error {
	return fmt.Errorf("%s: %w", what, ErrMissingRequiredParameter)
}
