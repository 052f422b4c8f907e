package worktime

import (
	"fmt"
	"sort"
)

// ComputeStats aggregates closed intervals into per-day totals. Days are keyed
// by the calendar date of the interval's start time, matching how payroll
// groups the same data.
func ComputeStats(intervals []Interval) Stats {
	totals := make(map[string]float64)
	for _, iv := range intervals {
		if iv.EndTime == nil {
			continue
		}
		year, month, day := iv.StartTime.Date()
		key := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		totals[key] += iv.Hours()
	}

	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var stats Stats
	for _, key := range keys {
		stats.Days = append(stats.Days, DayStat{Date: key, Hours: totals[key]})
		stats.TotalHours += totals[key]
	}
	return stats
}
