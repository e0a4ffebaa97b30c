package timehash

import (
	"time"

	"github.com/arloliu/timehash/precision"
)

// Clock supplies the current time to the convenience wrappers. Any source
// with a Now method satisfies it, so tests can inject fixed or stepped
// clocks. The codec only reads the clock, never owns it.
type Clock interface {
	Now() time.Time
}

// UTC is the system clock read in UTC, the default clock for UTCNowMillis.
var UTC Clock = utcClock{}

type utcClock struct{}

func (utcClock) Now() time.Time {
	return time.Now().UTC()
}

// HashMillis encodes the clock's current time at millisecond precision.
func HashMillis(clock Clock) (string, error) {
	return HashPrecision(clock.Now(), precision.Millis)
}

// UTCNowMillis encodes the current UTC time at millisecond precision.
func UTCNowMillis() (string, error) {
	return HashMillis(UTC)
}
