package alphabet

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbols_PairwiseDistinct(t *testing.T) {
	seen := make(map[byte]bool, len(Symbols))
	for i := 0; i < len(Symbols); i++ {
		require.False(t, seen[Symbols[i]], "duplicate symbol %q", Symbols[i])
		seen[Symbols[i]] = true
	}
	require.Len(t, seen, Radix)
}

func TestSymbols_AscendingByCode(t *testing.T) {
	// Lexicographic order of encoded strings must follow numeric order.
	for i := 1; i < len(Symbols); i++ {
		require.Less(t, Symbols[i-1], Symbols[i])
	}
}

func TestRadix(t *testing.T) {
	require.Equal(t, 48, Radix)
}

func TestDigitValue(t *testing.T) {
	tests := []struct {
		c    byte
		want int
	}{
		{'4', 0},
		{'9', 5},
		{'B', 6},
		{'J', 12},
		{'Z', 26},
		{'b', 27},
		{'g', 31},
		{'z', 47},
		{'0', -1},
		{'1', -1},
		{'A', -1},
		{'I', -1},
		{'O', -1},
		{'a', -1},
		{'*', -1},
		{' ', -1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, DigitValue(tt.c), "symbol %q", tt.c)
	}
}

func TestValid(t *testing.T) {
	require.True(t, Valid(""))
	require.True(t, Valid(Symbols))
	require.True(t, Valid("zJgnWz7wQHnM"))
	require.False(t, Valid("455*44"))
	require.False(t, Valid("0"))
}

func TestEncode_ZeroPadsWithZeroSymbol(t *testing.T) {
	require.Equal(t, "", Encode(0, 0))
	require.Equal(t, "4", Encode(0, 1))
	require.Equal(t, "444", Encode(0, 3))
	require.Equal(t, "444445", Encode(1, 6))
}

func TestEncode_MaxRepresentable(t *testing.T) {
	// radix^width - 1 is the largest value a width must accept.
	require.Equal(t, "z", Encode(47, 1))
	require.Equal(t, "zzz", Encode(48*48*48-1, 3))
	require.Equal(t, uint64(110591), Decode("zzz"))
}

func TestEncode_OverflowPanics(t *testing.T) {
	require.Panics(t, func() { Encode(48, 1) })
	require.Panics(t, func() { Encode(110592, 3) })
	require.Panics(t, func() { Encode(1, 0) })
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		value uint64
		width int
		want  string
	}{
		{0, 1, "4"},
		{12, 1, "J"},
		{31, 1, "g"},
		{789, 2, "NT"},
		{13506, 3, "9sQ"},
		{86399, 3, "nWz"},
		{999999999, 6, "7wQHnM"},
	}
	for _, tt := range tests {
		got := Encode(tt.value, tt.width)
		require.Equal(t, tt.want, got)
		require.Equal(t, tt.value, Decode(got))
	}
}

func TestEncodeDecode_FullUint64Range(t *testing.T) {
	// 48^12 exceeds 2^64, so twelve digits must carry any uint64 value.
	tests := []uint64{
		0,
		uint64(math.MaxInt32) + 1,
		uint64(math.MaxInt64),
		math.MaxUint64,
	}
	for _, value := range tests {
		got := Encode(value, 12)
		require.Len(t, got, 12)
		require.Equal(t, value, Decode(got))
	}
}

func TestPattern(t *testing.T) {
	require.Equal(t, "^$", Pattern(0))
	require.Equal(t, "["+Symbols+"]{6}", Pattern(6))
	require.True(t, strings.Contains(Pattern(2), "{2}"))
}

func BenchmarkEncode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Encode(86399, 3)
	}
}

func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Decode("nWz")
	}
}
