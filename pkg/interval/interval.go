package interval

import (
	"fmt"
	"strings"
	"time"
)

// Interval represents a supported candle aggregation interval.
type Interval struct {
	Name     string
	Duration time.Duration
}

// Supported intervals configuration
var (
	Interval1s  = Interval{Name: "1s", Duration: time.Second}
	Interval5s  = Interval{Name: "5s", Duration: 5 * time.Second}
	Interval10s = Interval{Name: "10s", Duration: 10 * time.Second}
	Interval15s = Interval{Name: "15s", Duration: 15 * time.Second}
	Interval30s = Interval{Name: "30s", Duration: 30 * time.Second}
	Interval45s = Interval{Name: "45s", Duration: 45 * time.Second}
	Interval1m  = Interval{Name: "1m", Duration: time.Minute}
	Interval5m  = Interval{Name: "5m", Duration: 5 * time.Minute}
	Interval10m = Interval{Name: "10m", Duration: 10 * time.Minute}
	Interval15m = Interval{Name: "15m", Duration: 15 * time.Minute}
	Interval30m = Interval{Name: "30m", Duration: 30 * time.Minute}
	Interval45m = Interval{Name: "45m", Duration: 45 * time.Minute}
	Interval1h  = Interval{Name: "1h", Duration: time.Hour}
	Interval1d  = Interval{Name: "1d", Duration: 24 * time.Hour}
)

// AllIntervals lists every supported interval, finest first.
var AllIntervals = []Interval{
	Interval1s, Interval5s, Interval10s, Interval15s, Interval30s, Interval45s,
	Interval1m, Interval5m, Interval10m, Interval15m, Interval30m, Interval45m,
	Interval1h, Interval1d,
}

// Interval registry for lookup
var intervalRegistry = make(map[string]Interval)

func init() {
	for _, interval := range AllIntervals {
		intervalRegistry[interval.Name] = interval
	}
}

// GetInterval returns an interval by name.
func GetInterval(name string) (Interval, error) {
	interval, exists := intervalRegistry[name]
	if !exists {
		return Interval{}, fmt.Errorf("unsupported interval %q, supported: %s",
			name, strings.Join(GetAllIntervalNames(), ", "))
	}
	return interval, nil
}

// IsValidInterval checks if interval name is supported.
func IsValidInterval(name string) bool {
	_, exists := intervalRegistry[name]
	return exists
}

// GetAllIntervalNames returns all supported interval names.
func GetAllIntervalNames() []string {
	names := make([]string, 0, len(AllIntervals))
	for _, interval := range AllIntervals {
		names = append(names, interval.Name)
	}
	return names
}
