// Package timehash encodes a date-time as a short, sortable, human-typable
// string over a fixed 48-symbol alphabet, and decodes such strings back.
//
// An encoded string is 6 to 12 characters long. The first six characters are
// the core, one digit each for year offset, month and day plus three digits
// for the second of day. The remaining characters are the sub-second suffix
// of the chosen precision tier, from none (whole seconds) up to six
// (nanoseconds). Because every tier has a distinct suffix width, the string
// length alone identifies the tier, and strings of equal length sort in
// chronological order.
//
// Supported years run from 2014 (encoded as digit zero) through 2061, one
// year per alphabet symbol.
//
// # Basic Usage
//
// Encoding and decoding:
//
//	t := time.Date(2017, 1, 2, 3, 45, 6, 789000000, time.UTC)
//
//	s, _ := timehash.Hash(t)                                  // "7569sQNT"
//	s, _ = timehash.HashPrecision(t, precision.Trim)          // "7569sQ"
//
//	decoded, _ := timehash.Unhash("7569sQNT")                 // t, millisecond tier
//	decoded, _ = timehash.UnhashPrecision("7569sQ", precision.Trim)
//
// Encoding the current time:
//
//	s, _ := timehash.UTCNowMillis()
//
// Hash picks the tier from the value itself: zero nanoseconds encodes with
// Trim, whole milliseconds with Millis, everything else with Nanos. The four
// intermediate group tiers (25 ms, 10 µs, 200 ns, 4 ns) are never picked
// automatically; callers wanting them pass one to HashPrecision explicitly.
//
// Every operation is a pure function of its inputs. The alphabet and tier
// table are immutable, so all functions are safe for unlimited concurrent
// use.
package timehash

import (
	"fmt"
	"strings"
	"time"

	"github.com/arloliu/timehash/alphabet"
	"github.com/arloliu/timehash/precision"
)

const (
	// YearEpoch is the first representable year; it encodes as digit zero.
	YearEpoch = 2014
	// YearMax is the last representable year, one year per alphabet symbol.
	YearMax = YearEpoch + alphabet.Radix - 1

	coreLen = 6

	secondsPerDay = 86400
)

// Hash encodes t, picking the sub-second tier from its nanosecond field:
// Trim for zero, Millis for a whole number of milliseconds, Nanos for
// everything else.
func Hash(t time.Time) (string, error) {
	switch ns := t.Nanosecond(); {
	case ns == 0:
		return HashPrecision(t, precision.Trim)
	case ns%int(time.Millisecond) == 0:
		return HashPrecision(t, precision.Millis)
	default:
		return HashPrecision(t, precision.Nanos)
	}
}

// HashPrecision encodes t at the given tier: the six character core followed
// by the tier's sub-second suffix.
//
// The date-time is read as a naive value, field by field; any location
// attached to t is ignored rather than converted.
func HashPrecision(t time.Time, p precision.Precision) (string, error) {
	if !p.Valid() {
		return "", fmt.Errorf("timehash: %w: %d", ErrUnknownPrecision, uint8(p))
	}
	year := t.Year()
	if year < YearEpoch {
		return "", fmt.Errorf("timehash: %w: %d is before %d", ErrYearBeforeEpoch, year, YearEpoch)
	}
	if year > YearMax {
		return "", fmt.Errorf("timehash: %w: %d is after %d", ErrYearAfterMax, year, YearMax)
	}

	secondOfDay := t.Hour()*3600 + t.Minute()*60 + t.Second()

	var b strings.Builder
	b.Grow(coreLen + p.Width())
	b.WriteString(alphabet.Encode(uint64(year-YearEpoch), 1))
	b.WriteString(alphabet.Encode(uint64(t.Month()), 1))
	b.WriteString(alphabet.Encode(uint64(t.Day()), 1))
	b.WriteString(alphabet.Encode(uint64(secondOfDay), 3))
	b.WriteString(p.EncodeSubSecond(p.Extract(t)))

	return b.String(), nil
}

// Unhash decodes s, inferring the tier from its length: lengths 6 through 12
// map one to one onto the seven tiers. Any other length fails with ErrShape.
func Unhash(s string) (time.Time, error) {
	p, ok := precision.ForSuffixLen(len(s) - coreLen)
	if !ok {
		return time.Time{}, fmt.Errorf("timehash: %w: %s", ErrShape, alphabet.Pattern(coreLen))
	}

	return UnhashPrecision(s, p)
}

// UnhashPrecision decodes s at an explicit tier and returns the
// reconstructed UTC date-time. The result carries no precision below the
// tier's own granularity; decoding a Trim string always yields zero
// nanoseconds.
func UnhashPrecision(s string, p precision.Precision) (time.Time, error) {
	if !p.Valid() {
		return time.Time{}, fmt.Errorf("timehash: %w: %d", ErrUnknownPrecision, uint8(p))
	}
	if len(s) < coreLen || !alphabet.Valid(s[:coreLen]) {
		return time.Time{}, fmt.Errorf("timehash: %w: %s", ErrShape, alphabet.Pattern(coreLen))
	}
	suffix := s[coreLen:]
	if !p.Matches(suffix) {
		return time.Time{}, fmt.Errorf("timehash: %w: %s", ErrSuffixShape, p.Pattern())
	}

	year := YearEpoch + alphabet.DigitValue(s[0])
	month := alphabet.DigitValue(s[1])
	day := alphabet.DigitValue(s[2])
	secondOfDay := int(alphabet.Decode(s[3:coreLen]))

	// Alphabet-valid digits can still carry impossible field values, e.g.
	// month 0 or second-of-day 110591. Reject them instead of letting
	// time.Date normalize across field boundaries.
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("timehash: %w: month %d", ErrFieldRange, month)
	}
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return time.Time{}, fmt.Errorf("timehash: %w: day %d of %d-%02d", ErrFieldRange, day, year, month)
	}
	if secondOfDay >= secondsPerDay {
		return time.Time{}, fmt.Errorf("timehash: %w: second-of-day %d", ErrFieldRange, secondOfDay)
	}

	base := time.Date(year, time.Month(month), day, 0, 0, secondOfDay, 0, time.UTC)
	out, err := p.Apply(suffix, base)
	if err != nil {
		return time.Time{}, fmt.Errorf("timehash: %w", err)
	}

	return out, nil
}

// daysIn returns the number of days in the given month.
func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
