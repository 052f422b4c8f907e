package payroll

import (
	"testing"
	"time"
)

func TestDefaultPeriodEndSwitzerland(t *testing.T) {
	now := time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)
	got := DefaultPeriodEnd(CountrySwitzerland, now)
	want := time.Date(2025, time.March, 25, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDefaultPeriodEndColombiaFirstHalf(t *testing.T) {
	now := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)
	got := DefaultPeriodEnd(CountryColombia, now)
	want := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDefaultPeriodEndColombiaSecondHalf(t *testing.T) {
	now := time.Date(2025, time.February, 20, 10, 0, 0, 0, time.UTC)
	got := DefaultPeriodEnd(CountryColombia, now)
	want := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected last day of month, got %v", got)
	}
}
