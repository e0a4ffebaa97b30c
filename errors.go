package timehash

import "errors"

// All errors report invalid caller input. None are transient: a failed call
// leaves no partial state and retrying with the same input fails the same
// way. Wrapped context is attached at the call site; match with errors.Is.
var (
	// ErrYearBeforeEpoch reports a year before YearEpoch.
	ErrYearBeforeEpoch = errors.New("year before epoch")

	// ErrYearAfterMax reports a year after YearMax.
	ErrYearAfterMax = errors.New("year after max")

	// ErrShape reports an input string that is missing, has an unsupported
	// length, or whose six character core contains a non-alphabet symbol.
	ErrShape = errors.New("does not match pattern")

	// ErrSuffixShape reports a sub-second suffix with the wrong length or a
	// non-alphabet symbol for the selected tier.
	ErrSuffixShape = errors.New("sub-second does not match pattern")

	// ErrFieldRange reports a shape-valid core that decodes to an impossible
	// calendar field, such as month 0 or second-of-day 86400.
	ErrFieldRange = errors.New("field out of range")

	// ErrUnknownPrecision reports a precision value outside the seven
	// defined tiers.
	ErrUnknownPrecision = errors.New("unknown precision")
)
