package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketStart(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	testCases := []struct {
		name      string
		interval  Interval
		timestamp time.Time
		loc       *time.Location
		expected  time.Time
	}{
		{
			name:      "utc - floors to 5s multiple",
			interval:  Interval5s,
			timestamp: time.Date(2024, 1, 15, 10, 30, 7, 0, time.UTC),
			loc:       time.UTC,
			expected:  time.Date(2024, 1, 15, 10, 30, 5, 0, time.UTC),
		},
		{
			name:      "utc - exact boundary stays",
			interval:  Interval5s,
			timestamp: time.Date(2024, 1, 15, 10, 30, 5, 0, time.UTC),
			loc:       time.UTC,
			expected:  time.Date(2024, 1, 15, 10, 30, 5, 0, time.UTC),
		},
		{
			name:     "45s buckets do not align to minutes",
			interval: Interval45s,
			// 37850s after midnight, floored to 37845 = 10:30:45.
			timestamp: time.Date(2024, 1, 15, 10, 30, 50, 0, time.UTC),
			loc:       time.UTC,
			expected:  time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC),
		},
		{
			name:      "local midnight anchor, not utc midnight",
			interval:  Interval1h,
			timestamp: time.Date(2024, 1, 15, 14, 45, 0, 0, time.UTC),
			loc:       newYork,
			expected:  time.Date(2024, 1, 15, 9, 0, 0, 0, newYork),
		},
		{
			name:      "daily bucket is the local trading day",
			interval:  Interval1d,
			timestamp: time.Date(2024, 1, 16, 2, 0, 0, 0, time.UTC),
			loc:       newYork,
			expected:  time.Date(2024, 1, 15, 0, 0, 0, 0, newYork),
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := testCase.interval.BucketStart(testCase.timestamp, testCase.loc)
			assert.True(t, testCase.expected.Equal(got), "expected %s, got %s", testCase.expected, got)
		})
	}
}

func TestIsInBucket(t *testing.T) {
	a := time.Date(2024, 1, 15, 10, 30, 1, 0, time.UTC)
	b := time.Date(2024, 1, 15, 10, 30, 4, 0, time.UTC)
	c := time.Date(2024, 1, 15, 10, 30, 5, 0, time.UTC)

	assert.True(t, Interval5s.IsInBucket(a, b, time.UTC))
	assert.False(t, Interval5s.IsInBucket(a, c, time.UTC))
	assert.True(t, Interval1m.IsInBucket(a, c, time.UTC))
}

func TestFakeUnix(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// A New York wall clock reading of 09:30:00 encodes as the epoch value of
	// 09:30:00 UTC, regardless of the real instant.
	local := time.Date(2024, 1, 15, 9, 30, 0, 0, newYork)
	expected := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC).Unix()
	assert.Equal(t, expected, FakeUnix(local))

	// A UTC instant encodes as itself.
	utc := time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, utc.Unix(), FakeUnix(utc))

	// Sub-second precision is dropped.
	assert.Equal(t, utc.Unix(), FakeUnix(utc.Add(500*time.Millisecond)))
}

func TestResolveLocation(t *testing.T) {
	loc, fellBack := ResolveLocation("America/New_York")
	assert.False(t, fellBack)
	assert.Equal(t, "America/New_York", loc.String())

	loc, fellBack = ResolveLocation("")
	assert.False(t, fellBack)
	assert.Equal(t, time.UTC, loc)

	loc, fellBack = ResolveLocation("Not/AZone")
	assert.True(t, fellBack)
	assert.Equal(t, time.UTC, loc)
}
