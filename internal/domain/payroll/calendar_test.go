package payroll

import (
	"testing"
	"time"
)

func TestIsHolidayColombia(t *testing.T) {
	newYear := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !IsHoliday(newYear, CountryColombia) {
		t.Fatal("expected 2025-01-01 to be a Colombian holiday")
	}

	ordinary := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	if IsHoliday(ordinary, CountryColombia) {
		t.Fatal("expected 2025-01-02 not to be a holiday")
	}
}

func TestIsHolidayIgnoresTimeOfDay(t *testing.T) {
	lateChristmas := time.Date(2025, time.December, 25, 23, 59, 0, 0, time.UTC)
	if !IsHoliday(lateChristmas, CountryColombia) {
		t.Fatal("expected holiday check to ignore the clock time")
	}
}

func TestIsHolidayUnconfiguredCountry(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		if IsHoliday(d, CountrySwitzerland) {
			t.Fatalf("expected no Swiss holidays to be configured, got true for %v", d)
		}
	}
}
