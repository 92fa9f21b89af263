package interval

import (
	"time"
)

// BucketStart calculates the start of the interval bucket containing the given
// instant. Buckets are aligned to local midnight in loc: the elapsed seconds
// since local midnight are floored to the nearest multiple of the interval
// length and the bucket start is reconstructed on the local wall clock.
func (i Interval) BucketStart(timestamp time.Time, loc *time.Location) time.Time {
	local := timestamp.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	elapsed := local.Sub(midnight)
	floored := elapsed - elapsed%i.Duration

	return midnight.Add(floored)
}

// IsInBucket checks if two timestamps fall within the same bucket in loc.
func (i Interval) IsInBucket(timestamp1, timestamp2 time.Time, loc *time.Location) bool {
	return i.BucketStart(timestamp1, loc).Equal(i.BucketStart(timestamp2, loc))
}

// FakeUnix re-interprets the wall-clock fields of t as if they were UTC fields
// and returns the epoch seconds of that fabricated UTC instant.
//
// This is the wire convention for every candle timestamp leaving this service:
// UTC-only charting clients render the value as-is, so encoding local time as
// fake UTC lets them display the user's local time without doing any timezone
// math of their own. It is a deliberate protocol compatibility hack, not a
// bug; nothing outside this package should re-derive it.
func FakeUnix(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC).Unix()
}

// ResolveLocation loads an IANA timezone name, falling back to UTC when the
// name is empty or unknown. The second return reports whether the fallback was
// taken so the caller can log it; an unknown timezone is never fatal.
func ResolveLocation(name string) (*time.Location, bool) {
	if name == "" {
		return time.UTC, false
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, true
	}
	return loc, false
}
