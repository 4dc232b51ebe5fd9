package thermo

import "errors"

// Domain errors for thermal computations.
var (
	// ErrInvalidConfiguration indicates a non-physical parameter set
	// (non-positive combined heat capacity, non-positive decay constant).
	ErrInvalidConfiguration = errors.New("thermo: invalid configuration")

	// ErrUnreachableTarget indicates a target temperature the body cannot
	// cross by cooling toward ambient.
	ErrUnreachableTarget = errors.New("thermo: target unreachable by cooling toward ambient")

	// ErrInvalidArgument indicates an argument outside the contract,
	// such as a negative time sample.
	ErrInvalidArgument = errors.New("thermo: invalid argument")
)
