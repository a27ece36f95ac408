// FILE: pkg/retrieval/estimator.go
// PURPOSE: Derive a per-session target distance from CSS pace and duration

package retrieval

import "math"

// The clamp keeps degenerate pace/duration combinations from extrapolating to
// implausible session targets.
const (
	minTargetMeters = 1200
	maxTargetMeters = 5000
)

// EstimateTargetDistance converts a CSS pace (minutes+seconds per 100m) and a
// session duration in minutes into a target distance in metres, rounded to
// the nearest 50m and clamped to [1200, 5000]. Returns nil when any input is
// missing or out of range.
func EstimateTargetDistance(cssMinutes, cssSeconds, sessionDuration interface{}) *float64 {
	cssMin := ToNumber(cssMinutes)
	cssSec := ToNumber(cssSeconds)
	sessionMin := ToNumber(sessionDuration)

	if cssMin == nil || cssSec == nil || sessionMin == nil {
		return nil
	}
	if *cssMin < 0 || *cssSec < 0 || *cssSec > 59 || *sessionMin <= 0 {
		return nil
	}

	secondsPer100m := *cssMin*60 + *cssSec
	if secondsPer100m <= 0 {
		return nil
	}

	metersPerMinute := (100 / secondsPer100m) * 60
	estimate := math.Round(metersPerMinute**sessionMin/50) * 50
	clamped := math.Max(minTargetMeters, math.Min(maxTargetMeters, estimate))
	return &clamped
}
