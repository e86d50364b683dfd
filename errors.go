package heredity

import "errors"

var (
	ErrMalformedPedigree   = errors.New("malformed pedigree")
	ErrPedigreeTooLarge    = errors.New("pedigree too large for exact enumeration")
	ErrZeroMass            = errors.New("cannot normalize a distribution with zero total mass")
	ErrOverlappingGeneSets = errors.New("one-gene and two-gene sets overlap")
	ErrUnknownPerson       = errors.New("unknown person")
	ErrInvalidTable        = errors.New("invalid probability table")
)
