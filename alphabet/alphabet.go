// Package alphabet defines the 48-symbol digit alphabet shared by every
// timehash string, along with fixed-width base-48 integer encoding and
// decoding over it.
//
// The symbol set deliberately omits visually ambiguous characters (0, 1, I,
// O, l) and vowels, so encoded strings stay unambiguous when read back by
// humans and never spell accidental words. Symbols are ordered by ASCII
// code, which makes encoded strings of equal length sort the same way the
// values they encode do.
package alphabet

import "fmt"

// Symbols is the ordered digit alphabet. A symbol's index is its numeric
// value: '4' is zero and 'z' is 47. The ordering is part of the wire format;
// changing it breaks compatibility with every previously encoded string.
const Symbols = "456789BCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz"

// Radix is the numeral base of the encoding, equal to the alphabet size.
const Radix = len(Symbols)

// digitValues maps an ASCII byte to its digit value, -1 when the byte is not
// part of the alphabet.
var digitValues = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(Symbols); i++ {
		table[Symbols[i]] = int8(i)
	}

	return table
}()

// DigitValue returns the numeric value of a single alphabet symbol, or -1
// when c is not an alphabet symbol.
func DigitValue(c byte) int {
	return int(digitValues[c])
}

// Valid reports whether every byte of s is an alphabet symbol.
// The empty string is valid.
func Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		if digitValues[s[i]] < 0 {
			return false
		}
	}

	return true
}

// Encode renders value as exactly width base-48 digits, most significant
// digit first, left-padded with the zero symbol '4'.
//
// Callers must range-check beforehand: a value that does not fit in width
// digits is a programmer error, and Encode panics on it rather than
// truncating silently.
func Encode(value uint64, width int) string {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = Symbols[value%uint64(Radix)]
		value /= uint64(Radix)
	}
	if value != 0 {
		panic(fmt.Sprintf("alphabet: value overflows %d digit(s)", width))
	}

	return string(buf)
}

// Decode interprets s as a base-48 number, most significant digit first.
// The input must already pass Valid; bytes outside the alphabet yield a
// meaningless result.
func Decode(s string) uint64 {
	var v uint64
	for i := 0; i < len(s); i++ {
		v = v*uint64(Radix) + uint64(digitValues[s[i]])
	}

	return v
}

// Pattern returns the validation pattern text for a run of width symbols,
// used in shape error messages. Width zero yields the empty-match pattern.
func Pattern(width int) string {
	if width == 0 {
		return "^$"
	}

	return fmt.Sprintf("[%s]{%d}", Symbols, width)
}
