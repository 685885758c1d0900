package services

import (
	"math"
	"strings"
	"time"
)

// CalcHours returns the elapsed time between start and end in hours,
// rounded half-up to two decimal places. The absolute difference is used,
// so argument order does not affect the magnitude.
func CalcHours(start, end time.Time) float64 {
	ms := math.Abs(float64(end.Sub(start).Milliseconds()))
	return math.Round(ms/3600000*100) / 100
}

// MergeTags joins a tag list into the comma-separated storage form.
// An empty list is stored as NULL.
func MergeTags(tags []string) *string {
	if len(tags) == 0 {
		return nil
	}
	merged := strings.Join(tags, ",")
	return &merged
}
