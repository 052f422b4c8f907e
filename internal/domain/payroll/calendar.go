package payroll

import "time"

type monthDay struct {
	month time.Month
	day   int
}

// Colombian public holidays. Movable feasts (the Easter-linked days and Corpus
// Christi) and the Monday-shifted civil holidays are pinned to their observed
// dates rather than derived from the liturgical calendar.
var colombianHolidays = []monthDay{
	{time.January, 1},   // Año Nuevo
	{time.January, 6},   // Reyes Magos
	{time.March, 23},    // San José
	{time.April, 1},     // Jueves Santo
	{time.April, 2},     // Viernes Santo
	{time.May, 1},       // Día del Trabajo
	{time.June, 8},      // Corpus Christi
	{time.June, 29},     // San Pedro y San Pablo
	{time.July, 20},     // Día de la Independencia
	{time.August, 7},    // Batalla de Boyacá
	{time.August, 15},   // Asunción de la Virgen
	{time.October, 12},  // Día de la Raza
	{time.November, 1},  // Todos los Santos
	{time.November, 11}, // Independencia de Cartagena
	{time.December, 8},  // Inmaculada Concepción
	{time.December, 25}, // Navidad
}

// IsHoliday reports whether the date falls on a public holiday for the given
// payroll country. Only the calendar date matters, never the time of day.
// Countries without a configured table always return false; Swiss holidays
// are cantonal and not configured.
func IsHoliday(date time.Time, country string) bool {
	if country != CountryColombia {
		return false
	}
	_, month, day := date.Date()
	for _, h := range colombianHolidays {
		if h.month == month && h.day == day {
			return true
		}
	}
	return false
}
