package worktime

import (
	"math"
	"testing"
	"time"
)

func closed(start, end time.Time) Interval {
	return Interval{StartTime: start, EndTime: &end}
}

func TestComputeStatsGroupsByDay(t *testing.T) {
	day1 := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC)

	stats := ComputeStats([]Interval{
		closed(day1, day1.Add(3*time.Hour)),
		closed(day1.Add(5*time.Hour), day1.Add(9*time.Hour)),
		closed(day2, day2.Add(6*time.Hour)),
	})

	if math.Abs(stats.TotalHours-13) > 1e-9 {
		t.Fatalf("expected 13 total hours, got %v", stats.TotalHours)
	}
	if len(stats.Days) != 2 {
		t.Fatalf("expected 2 day entries, got %d", len(stats.Days))
	}
	if stats.Days[0].Date != "2025-03-03" || math.Abs(stats.Days[0].Hours-7) > 1e-9 {
		t.Fatalf("unexpected first day stat: %+v", stats.Days[0])
	}
	if stats.Days[1].Date != "2025-03-04" || math.Abs(stats.Days[1].Hours-6) > 1e-9 {
		t.Fatalf("unexpected second day stat: %+v", stats.Days[1])
	}
}

func TestComputeStatsSkipsOpenIntervals(t *testing.T) {
	start := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)

	stats := ComputeStats([]Interval{
		{StartTime: start},
		closed(start.Add(4*time.Hour), start.Add(6*time.Hour)),
	})

	if math.Abs(stats.TotalHours-2) > 1e-9 {
		t.Fatalf("expected open interval to be skipped, got %v total hours", stats.TotalHours)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.TotalHours != 0 || len(stats.Days) != 0 {
		t.Fatalf("expected empty stats, got %+v", stats)
	}
}
