package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetInterval(t *testing.T) {
	testCases := []struct {
		name     string
		interval string
		assertFn func(t *testing.T, iv Interval, err error)
	}{
		{
			name:     "success - seconds interval",
			interval: "45s",
			assertFn: func(t *testing.T, iv Interval, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "45s", iv.Name)
				assert.Equal(t, 45*time.Second, iv.Duration)
			},
		},
		{
			name:     "success - daily interval",
			interval: "1d",
			assertFn: func(t *testing.T, iv Interval, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 24*time.Hour, iv.Duration)
			},
		},
		{
			name:     "error - unsupported name",
			interval: "2m",
			assertFn: func(t *testing.T, iv Interval, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), `unsupported interval "2m"`)
				// The error names every supported interval.
				for _, name := range GetAllIntervalNames() {
					assert.Contains(t, err.Error(), name)
				}
			},
		},
		{
			name:     "error - empty name",
			interval: "",
			assertFn: func(t *testing.T, iv Interval, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			iv, err := GetInterval(testCase.interval)
			testCase.assertFn(t, iv, err)
		})
	}
}

func TestIsValidInterval(t *testing.T) {
	for _, name := range GetAllIntervalNames() {
		assert.True(t, IsValidInterval(name), name)
	}
	assert.False(t, IsValidInterval("2s"))
	assert.False(t, IsValidInterval("1w"))
}
