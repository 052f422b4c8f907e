package jobs

import (
	"testing"
	"time"
)

func TestMarkRunGuardsSameDay(t *testing.T) {
	s := &Service{lastRun: make(map[string]string)}

	morning := time.Date(2025, time.March, 4, 6, 0, 0, 0, time.UTC)
	if !s.markRun(JobPeriodReminder, morning) {
		t.Fatal("expected first run of the day to be allowed")
	}
	if s.markRun(JobPeriodReminder, morning.Add(2*time.Hour)) {
		t.Fatal("expected second run on the same day to be blocked")
	}

	nextDay := morning.AddDate(0, 0, 1)
	if !s.markRun(JobPeriodReminder, nextDay) {
		t.Fatal("expected run on the next day to be allowed")
	}
}

func TestMarkRunIsPerJobType(t *testing.T) {
	s := &Service{lastRun: make(map[string]string)}

	now := time.Date(2025, time.March, 4, 6, 0, 0, 0, time.UTC)
	if !s.markRun(JobPeriodReminder, now) {
		t.Fatal("expected reminder job to run")
	}
	if !s.markRun(JobStaleCleanup, now) {
		t.Fatal("expected cleanup job to run independently of the reminder")
	}
}

func TestSameDate(t *testing.T) {
	a := time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)
	b := time.Date(2025, time.March, 4, 23, 59, 0, 0, time.UTC)
	if !sameDate(a, b) {
		t.Fatal("expected same calendar day to match")
	}
	if sameDate(a, a.AddDate(0, 0, 1)) {
		t.Fatal("expected different days not to match")
	}
}
