package payroll

import (
	"math"
	"testing"
)

func TestGrossPaySwitzerland(t *testing.T) {
	record := Record{
		CategorizedHours: CategorizedHours{
			Regular:  10,
			Overtime: 2,
			Night:    3,
			Holiday:  1,
			// Colombian-only buckets must not contribute to Swiss pay.
			SundayHoliday:              5,
			OvertimeNight:              5,
			OvertimeSundayHoliday:      5,
			OvertimeNightSundayHoliday: 5,
		},
		HourlyRate: 50,
	}

	got := GrossPay(record, CountrySwitzerland)
	want := 10*50.0 + 2*50*1.25 + 3*50*1.25 + 1*50*2.0
	if got != want {
		t.Fatalf("expected gross %v, got %v", want, got)
	}
}

func TestGrossPayColombia(t *testing.T) {
	record := Record{
		CategorizedHours: CategorizedHours{
			Regular:                    10,
			Overtime:                   2,
			Night:                      1,
			Holiday:                    1,
			SundayHoliday:              1,
			OvertimeNight:              1,
			OvertimeSundayHoliday:      1,
			OvertimeNightSundayHoliday: 2,
		},
		HourlyRate: 10000,
	}

	got := GrossPay(record, CountryColombia)
	want := 100000.0 + 25000 + 17500 + 20000 + 20000 + 21875 + 25000 + 70000
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("expected gross %v, got %v", want, got)
	}
}

func TestDeductions(t *testing.T) {
	if got := Deductions(1000, CountrySwitzerland); math.Abs(got-256) > 1e-9 {
		t.Fatalf("expected CH deductions 256, got %v", got)
	}
	if got := Deductions(1000, CountryColombia); math.Abs(got-260) > 1e-9 {
		t.Fatalf("expected CO deductions 260, got %v", got)
	}
	// Unknown countries take the Colombian rates.
	if got := Deductions(1000, "DE"); math.Abs(got-260) > 1e-9 {
		t.Fatalf("expected fallback deductions 260, got %v", got)
	}
}

func TestSplitDeductions(t *testing.T) {
	social, taxes := SplitDeductions(100)
	if social != 70 || taxes != 30 {
		t.Fatalf("expected 70/30 split, got %v/%v", social, taxes)
	}
}

func TestPayComputationDeterminism(t *testing.T) {
	record := Record{
		CategorizedHours: CategorizedHours{Regular: 80.25, Overtime: 3.33, Night: 1.17},
		HourlyRate:       19999.99,
	}

	first := GrossPay(record, CountryColombia)
	for i := 0; i < 10; i++ {
		if got := GrossPay(record, CountryColombia); got != first {
			t.Fatalf("gross pay not deterministic: %v vs %v", first, got)
		}
	}

	d1 := Deductions(first, CountryColombia)
	d2 := Deductions(first, CountryColombia)
	if d1 != d2 {
		t.Fatalf("deductions not deterministic: %v vs %v", d1, d2)
	}
}
