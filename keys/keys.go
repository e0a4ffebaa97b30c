// Package keys builds sortable object keys from a timestamp and a name.
//
// A key is a millisecond-tier timehash stamp (8 characters) followed by a
// 12 character base-48 rendering of the name's xxHash64 digest, 20
// characters in total. Keys sort first by time and then by name digest, and
// draw every character from the timehash alphabet, which makes them safe
// for object stores and log tokens that dislike punctuation.
//
// The digest narrows the key to one name, it does not identify it: xxHash64
// is not cryptographic and distinct names can collide.
package keys

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/timehash"
	"github.com/arloliu/timehash/alphabet"
	"github.com/arloliu/timehash/precision"
)

const (
	stampLen  = 8  // millisecond-tier timehash
	digestLen = 12 // 48^12 > 2^64, so any xxHash64 digest fits

	// KeyLen is the length of every key produced by New.
	KeyLen = stampLen + digestLen
)

// New builds the key for name at time t. The year of t must fall within the
// timehash year window.
func New(name string, t time.Time) (string, error) {
	stamp, err := timehash.HashPrecision(t, precision.Millis)
	if err != nil {
		return "", err
	}

	return stamp + alphabet.Encode(xxhash.Sum64String(name), digestLen), nil
}

// Split recovers the millisecond-quantized timestamp and the name digest
// from a key produced by New.
func Split(key string) (time.Time, uint64, error) {
	if len(key) != KeyLen {
		return time.Time{}, 0, fmt.Errorf("keys: key must be %d characters, got %d", KeyLen, len(key))
	}
	t, err := timehash.UnhashPrecision(key[:stampLen], precision.Millis)
	if err != nil {
		return time.Time{}, 0, err
	}
	digest := key[stampLen:]
	if !alphabet.Valid(digest) {
		return time.Time{}, 0, fmt.Errorf("keys: digest does not match pattern: %s", alphabet.Pattern(digestLen))
	}

	return t, alphabet.Decode(digest), nil
}
