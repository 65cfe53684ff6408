package factory

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// RandomInt64 returns a random value in [lo, hi]. It returns
// lo when hi <= lo.
func RandomInt64(lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	span := uint64(hi - lo)
	if span == math.MaxUint64 {
		return int64(rand.Uint64())
	}
	return lo + int64(rand.Uint64N(span+1))
}

// RandomID returns a positive random id.
func RandomID() int64 {
	return RandomInt64(1, math.MaxInt32)
}

// RandomKey returns a random error key that never collides with
// the reserved keys.
func RandomKey() string {
	return "key_" + uuid.NewString()
}

// RecentTime returns a UTC time within the last day.
func RecentTime() time.Time {
	offset := time.Duration(RandomInt64(1, int64(24*time.Hour)))
	return time.Now().UTC().Add(-offset)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
