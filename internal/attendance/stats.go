package attendance

import (
	"math"
	"sort"
)

// ComputeStats reduces attendance records into streaks and counts in one
// pass. Records are sorted oldest-first before scanning, so CurrentStreak is
// the run of present records ending at the most recent record; any
// non-present record (absent or under review) breaks a run.
func ComputeStats(records []Record) Stats {
	stats := Stats{Total: len(records)}
	if len(records) == 0 {
		return stats
	}

	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	run := 0
	for _, record := range sorted {
		switch record.Status {
		case StatusPresent:
			stats.Present++
			run++
			if run > stats.LongestStreak {
				stats.LongestStreak = run
			}
		case StatusAbsent:
			stats.Absent++
			run = 0
		default:
			run = 0
		}
	}
	stats.CurrentStreak = run

	if denom := stats.Present + stats.Absent; denom > 0 {
		stats.Rate = int(math.Round(float64(stats.Present) / float64(denom) * 100))
	}
	return stats
}
