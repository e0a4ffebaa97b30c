// Package precision defines the seven sub-second handling tiers of the
// timehash format, from whole seconds down to single nanoseconds.
//
// Each tier trades string length against resolution:
//
//	Tier        Period   Frequency  Suffix chars  Total chars
//	Trim        1 s      1 Hz       0             6
//	MilliGroup  25 ms    40 Hz      1             7
//	Millis      1 ms     1 kHz      2             8
//	MicroGroup  10 µs    100 kHz    3             9
//	NanoGroup   200 ns   5 MHz      4             10
//	QuadNano    4 ns     250 MHz    5             11
//	Nanos       1 ns     1 GHz      6             12
//
// Because every tier produces a distinct suffix width, the total length of
// an encoded string identifies the tier that produced it.
package precision

import (
	"errors"
	"time"

	"github.com/arloliu/timehash/alphabet"
)

// Precision selects one of the seven sub-second tiers.
type Precision uint8

const (
	Trim       Precision = iota // whole seconds, no suffix
	MilliGroup                  // 25 ms groups, 1 suffix char
	Millis                      // 1 ms, 2 suffix chars
	MicroGroup                  // 10 µs groups, 3 suffix chars
	NanoGroup                   // 200 ns groups, 4 suffix chars
	QuadNano                    // 4 ns groups, 5 suffix chars
	Nanos                       // 1 ns, 6 suffix chars

	numTiers = 7
)

// ErrOutOfRange reports a decoded suffix whose sub-second value reaches one
// second or beyond. Such suffixes are shape-valid but cannot come from a
// correctly encoded string, since extracted sub-second values are always
// below their tier's one-second limit.
var ErrOutOfRange = errors.New("sub-second value out of range")

// descriptor holds a tier's immutable parameters: the suffix width, the
// duration of one source-field unit (zero for Trim, which reads no field),
// and the group size divided out before encoding and multiplied back in
// after decoding.
type descriptor struct {
	name  string
	width int
	unit  time.Duration
	group int64
}

var tiers = [numTiers]descriptor{
	Trim:       {name: "Trim", width: 0, unit: 0, group: 1},
	MilliGroup: {name: "MilliGroup", width: 1, unit: time.Millisecond, group: 25},
	Millis:     {name: "Millis", width: 2, unit: time.Millisecond, group: 1},
	MicroGroup: {name: "MicroGroup", width: 3, unit: time.Microsecond, group: 10},
	NanoGroup:  {name: "NanoGroup", width: 4, unit: time.Nanosecond, group: 200},
	QuadNano:   {name: "QuadNano", width: 5, unit: time.Nanosecond, group: 4},
	Nanos:      {name: "Nanos", width: 6, unit: time.Nanosecond, group: 1},
}

// All returns the seven tiers in ascending resolution order.
func All() []Precision {
	out := make([]Precision, numTiers)
	for i := range out {
		out[i] = Precision(i)
	}

	return out
}

// ForSuffixLen maps a suffix length back to the tier that produces it.
// Every valid encoded length from 6 to 12 characters carries a suffix of
// 0 to 6 characters, identifying exactly one tier.
func ForSuffixLen(n int) (Precision, bool) {
	if n < 0 || n >= numTiers {
		return 0, false
	}

	return Precision(n), true
}

// Valid reports whether p is one of the seven defined tiers.
func (p Precision) Valid() bool {
	return int(p) < numTiers
}

func (p Precision) String() string {
	if !p.Valid() {
		return "Unknown"
	}

	return tiers[p].name
}

// Width returns the number of suffix characters the tier emits.
func (p Precision) Width() int {
	return tiers[p].width
}

// Period returns the tier's resolution, the interval between consecutive
// representable instants.
func (p Precision) Period() time.Duration {
	d := tiers[p]
	if d.unit == 0 {
		return time.Second
	}

	return d.unit * time.Duration(d.group)
}

// Extract reads the tier's sub-second field from t: the millisecond,
// microsecond or nanosecond of the current second. Trim always yields 0.
func (p Precision) Extract(t time.Time) int {
	d := tiers[p]
	if d.unit == 0 {
		return 0
	}

	return t.Nanosecond() / int(d.unit)
}

// EncodeSubSecond renders an extracted sub-second value as the tier's
// fixed-width suffix, dividing the tier's group size out first. Trim
// returns the empty string.
func (p Precision) EncodeSubSecond(v int) string {
	d := tiers[p]
	if d.width == 0 {
		return ""
	}

	return alphabet.Encode(uint64(v)/uint64(d.group), d.width)
}

// Apply parses a suffix that already passed Matches, multiplies the tier's
// group size back in, and returns base advanced by the decoded sub-second
// amount. Base must carry a zero nanosecond field.
//
// Returns ErrOutOfRange when the decoded value reaches one second, which a
// shape-valid suffix can still do (e.g. a MilliGroup digit above 39).
func (p Precision) Apply(suffix string, base time.Time) (time.Time, error) {
	d := tiers[p]
	if d.width == 0 {
		return base, nil
	}

	sub := time.Duration(int64(alphabet.Decode(suffix))*d.group) * d.unit
	if sub >= time.Second {
		return time.Time{}, ErrOutOfRange
	}

	return base.Add(sub), nil
}

// Matches reports whether suffix has exactly the tier's width and contains
// only alphabet symbols.
func (p Precision) Matches(suffix string) bool {
	return len(suffix) == tiers[p].width && alphabet.Valid(suffix)
}

// Pattern returns the validation pattern text for the tier's suffix, used
// in shape error messages.
func (p Precision) Pattern() string {
	return alphabet.Pattern(tiers[p].width)
}

// Quantize truncates t to the tier's resolution: the instant an
// encode/decode round trip at this tier reconstructs.
func (p Precision) Quantize(t time.Time) time.Time {
	d := tiers[p]
	base := t.Add(-time.Duration(t.Nanosecond()))
	if d.unit == 0 {
		return base
	}
	v := int64(t.Nanosecond()) / int64(d.unit) / d.group * d.group

	return base.Add(time.Duration(v) * d.unit)
}
