package keys

import (
	"sort"
	"testing"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/timehash"
	"github.com/arloliu/timehash/alphabet"
	"github.com/arloliu/timehash/precision"
)

func TestNew(t *testing.T) {
	instant := time.Date(2017, 1, 2, 3, 45, 6, 789000000, time.UTC)

	key, err := New("cpu.usage", instant)
	require.NoError(t, err)
	require.Len(t, key, KeyLen)
	require.True(t, alphabet.Valid(key))
	require.Equal(t, "7569sQNT", key[:8], "millisecond stamp prefix")
	require.Equal(t, xxhash.Sum64String("cpu.usage"), alphabet.Decode(key[8:]))
}

func TestNew_SameNameSameDigest(t *testing.T) {
	a, err := New("memory.usage", time.Date(2020, 3, 4, 5, 6, 7, 0, time.UTC))
	require.NoError(t, err)
	b, err := New("memory.usage", time.Date(2021, 8, 9, 10, 11, 12, 0, time.UTC))
	require.NoError(t, err)
	require.Equal(t, a[8:], b[8:])
	require.NotEqual(t, a[:8], b[:8])
}

func TestNew_YearOutsideWindow(t *testing.T) {
	_, err := New("x", time.Date(2013, 12, 31, 23, 59, 59, 0, time.UTC))
	require.ErrorIs(t, err, timehash.ErrYearBeforeEpoch)

	_, err = New("x", time.Date(2062, 1, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorIs(t, err, timehash.ErrYearAfterMax)
}

func TestSplit_RoundTrip(t *testing.T) {
	instant := time.Date(2033, 6, 15, 23, 59, 59, 123456789, time.UTC)

	key, err := New("disk.io", instant)
	require.NoError(t, err)

	decoded, digest, err := Split(key)
	require.NoError(t, err)
	require.Equal(t, precision.Millis.Quantize(instant), decoded)
	require.Equal(t, xxhash.Sum64String("disk.io"), digest)
}

func TestSplit_Errors(t *testing.T) {
	_, _, err := Split("")
	require.ErrorContains(t, err, "20 characters")

	_, _, err = Split("7569sQNT")
	require.ErrorContains(t, err, "20 characters")

	// Core shape failure inside the stamp.
	_, _, err = Split("*569sQNT444444444444")
	require.ErrorIs(t, err, timehash.ErrShape)

	// Non-alphabet byte inside the digest.
	_, _, err = Split("7569sQNT44444444444*")
	require.ErrorContains(t, err, "digest does not match pattern")
}

func TestKeys_SortByTimeFirst(t *testing.T) {
	start := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	keys := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		key, err := New("req.latency", start.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
		keys = append(keys, key)
	}
	require.True(t, sort.StringsAreSorted(keys))
}
