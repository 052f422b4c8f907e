package payroll

// GrossPay weights each hour bucket with the country's premium multipliers.
// Swiss premiums are a simplification (the real values are cantonal): 125%
// overtime and night, 200% holidays. Colombian premiums: 125% overtime, 175%
// night, 200% Sundays and holidays, with combined categories priced above
// their components.
func GrossPay(r Record, country string) float64 {
	rate := r.HourlyRate
	gross := r.Regular * rate

	if country == CountrySwitzerland {
		gross += r.Overtime * rate * 1.25
		gross += r.Night * rate * 1.25
		gross += r.Holiday * rate * 2.0
		return gross
	}

	gross += r.Overtime * rate * 1.25
	gross += r.Night * rate * 1.75
	gross += r.Holiday * rate * 2.0
	gross += r.SundayHoliday * rate * 2.0
	gross += r.OvertimeNight * rate * 2.1875 // 1.25 * 1.75
	gross += r.OvertimeSundayHoliday * rate * 2.5 // 1.25 * 2.0
	gross += r.OvertimeNightSundayHoliday * rate * 3.5
	return gross
}

// Deductions returns the combined social security and tax withholding on a
// gross amount. Switzerland: 10.6% social insurance (AHV/IV/EO plus ALV) and
// a flat 15% withholding tax. Colombia: 16% social security and 10% income
// tax. Both are simplifications of the real progressive schemes.
func Deductions(gross float64, country string) float64 {
	if country == CountrySwitzerland {
		return gross*0.106 + gross*0.15
	}
	return gross*0.16 + gross*0.10
}

// The deduction total is apportioned 70/30 between social security and taxes
// on the payslip, independent of country.
const (
	socialSecurityShare = 0.7
	taxShare            = 0.3
)

// SplitDeductions apportions an already-computed deduction total.
func SplitDeductions(total float64) (socialSecurity, taxes float64) {
	return total * socialSecurityShare, total * taxShare
}
