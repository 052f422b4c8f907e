package payroll

import "time"

// DefaultPeriodEnd returns the end of the pay period containing now.
// Switzerland pays monthly on the 25th; Colombia pays twice a month, on the
// 15th and on the last day of the month.
func DefaultPeriodEnd(country string, now time.Time) time.Time {
	if country == CountrySwitzerland {
		return time.Date(now.Year(), now.Month(), 25, 0, 0, 0, 0, now.Location())
	}
	if now.Day() <= 15 {
		return time.Date(now.Year(), now.Month(), 15, 0, 0, 0, 0, now.Location())
	}
	// Day zero of the next month normalizes to this month's last day.
	return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
}
