package dbm

import "errors"

// Sentinel errors for the dbm package. Semantic emptiness is reported as a
// Status value, never as an error; these errors are reserved
// for caller-input and arithmetic failures that are exceptional, not normal
// control flow.
var (
	// ErrBadDimension is returned when a requested dimension is not
	// positive, or when two DBMs expected to share a dimension don't.
	ErrBadDimension = errors.New("dbm: bad dimension")
	// ErrClockOutOfRange is returned when a clock.ID falls outside a
	// DBM's dimension.
	ErrClockOutOfRange = errors.New("dbm: clock out of range")
	// ErrSameClock is returned when an operation requires two distinct
	// clocks but was given the same one twice.
	ErrSameClock = errors.New("dbm: same clock given twice")
	// ErrBadFactor is returned when a scaling factor is not positive.
	ErrBadFactor = errors.New("dbm: bad scaling factor")
	// ErrArithOverflow is returned when scaling a bound would overflow.
	ErrArithOverflow = errors.New("dbm: arithmetic overflow")
	// ErrArithUnderflow is returned when scaling a bound would underflow.
	ErrArithUnderflow = errors.New("dbm: arithmetic underflow")
	// ErrValueOverflow is returned when a constraint's value exceeds the
	// representable range.
	ErrValueOverflow = errors.New("dbm: value overflow")
	// ErrNotSingleValuation is returned when a DBM expected to denote a
	// single integer point does not.
	ErrNotSingleValuation = errors.New("dbm: not a single valuation")
	// ErrParse is returned when parsing a serialised zone or constraint
	// fails; wrapped with details of what was malformed.
	ErrParse = errors.New("dbm: parse error")
)
