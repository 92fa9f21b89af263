package util

import "time"

// SessionDate formats a time as the YYYY-MM-DD string that keys per-day
// cached datasets.
func SessionDate(t time.Time) string {
	return t.Format("2006-01-02")
}
