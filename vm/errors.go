package vm

import "errors"

// Sentinel errors for every distinct undefined-behavior trap the machine
// can hit, in the spirit of the teacher's errProgramFinished /
// errSegmentationFault / errIllegalOperation family: one comparable value
// per condition, checked with ==, never a bespoke error type per trap.
var (
	// ErrHalted is not a trap: it is the normal termination signal raised
	// by the halt opcode.
	ErrHalted = errors.New("halt")

	ErrDivisionByZero           = errors.New("division by zero")
	ErrOutputByteRange          = errors.New("output operand exceeds 255")
	ErrSegmentFault             = errors.New("segmentation fault: invalid segment or offset")
	ErrUnmappedSegment          = errors.New("reference to unmapped segment identifier")
	ErrIdentifierSpaceExhausted = errors.New("segment identifier space exhausted")
	ErrDoubleFree               = errors.New("free of an already-free or reserved identifier")
	ErrUnknownOpcode            = errors.New("instruction not recognized")
)
