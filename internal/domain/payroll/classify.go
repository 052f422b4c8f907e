package payroll

import (
	"fmt"
	"math"
	"time"
)

// nightWindow is the clock-time range that counts as night-shift work. Both
// configured windows wrap midnight (start hour > end hour).
type nightWindow struct {
	startHour int
	endHour   int
}

func nightWindowFor(country string) nightWindow {
	if country == CountrySwitzerland {
		return nightWindow{startHour: 20, endHour: 6}
	}
	return nightWindow{startHour: 22, endHour: 6}
}

// ClassifyIntervals buckets completed work intervals into the hour categories
// used for premium pay.
//
// Overtime is a daily threshold, not a per-interval one: a day spread over
// several short sessions can still tip into overtime, so intervals are grouped
// by the calendar date of their start time first. On an overtime day each
// session contributes to the overtime buckets proportionally to its share of
// the day's total hours.
//
// On overtime days only the overtime share of a session is banked; the regular
// share of those days is not credited to any bucket. That asymmetry matches
// the payout history this engine replaces and stays until stakeholders sign
// off on a change (see DESIGN.md).
func ClassifyIntervals(intervals []Interval, profile Profile) CategorizedHours {
	var hours CategorizedHours

	window := nightWindowFor(profile.Country)
	threshold := profile.NormalWorkingHours
	if threshold <= 0 {
		threshold = DefaultNormalWorkingHours
	}

	byDay := make(map[string][]Interval)
	var dayOrder []string
	for _, iv := range intervals {
		if iv.End.IsZero() {
			continue
		}
		key := dayKey(iv.Start)
		if _, ok := byDay[key]; !ok {
			dayOrder = append(dayOrder, key)
		}
		byDay[key] = append(byDay[key], iv)
	}

	for _, key := range dayOrder {
		day := byDay[key]

		var totalDayHours float64
		for _, iv := range day {
			totalDayHours += iv.Hours()
		}

		overtimeDay := totalDayHours > threshold
		overtimeHours := math.Max(0, totalDayHours-threshold)

		for _, iv := range day {
			workHours := iv.Hours()

			sunday := iv.Start.Weekday() == time.Sunday
			holiday := IsHoliday(iv.Start, profile.Country)
			night := inNightWindow(iv.Start, iv.End, window)

			// A day key only exists when at least one interval contributed,
			// so totalDayHours is non-zero here.
			proportion := workHours / totalDayHours
			overtimePart := overtimeHours * proportion

			switch {
			case overtimeDay && night && (sunday || holiday):
				hours.OvertimeNightSundayHoliday += overtimePart
			case overtimeDay && (sunday || holiday):
				hours.OvertimeSundayHoliday += overtimePart
			case overtimeDay && night:
				hours.OvertimeNight += overtimePart
			case overtimeDay:
				hours.Overtime += overtimePart
			case night && (sunday || holiday):
				hours.SundayHoliday += workHours
			case night:
				hours.Night += workHours
			case sunday || holiday:
				hours.SundayHoliday += workHours
			default:
				hours.Regular += workHours
			}
		}
	}

	return hours
}

// dayKey groups intervals by the calendar date of their start, in the start
// time's own location.
func dayKey(t time.Time) string {
	year, month, day := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// inNightWindow reports whether a session touches the night window. This is a
// coarse minute-of-day overlap test, not true interval intersection: sessions
// spanning more than 24 hours can be misjudged. Kept as-is to preserve
// established payouts.
func inNightWindow(start, end time.Time, w nightWindow) bool {
	startHour, startMinute := start.Hour(), start.Minute()
	endHour, endMinute := end.Hour(), end.Minute()

	// Session crossing midnight: fall back to an hour-level check.
	if end.Before(start) || (endHour < startHour && end.Day() != start.Day()) {
		return startHour >= w.startHour || endHour < w.endHour
	}

	startTotal := startHour*60 + startMinute
	endTotal := endHour*60 + endMinute
	nightStart := w.startHour * 60
	nightEnd := w.endHour * 60

	if w.startHour > w.endHour {
		// Window wraps midnight, e.g. 22:00-06:00.
		return startTotal >= nightStart || endTotal < nightEnd ||
			(startTotal < nightEnd && endTotal >= nightStart)
	}
	return startTotal >= nightStart && endTotal < nightEnd
}
