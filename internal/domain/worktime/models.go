package worktime

import "time"

// Interval is one clocked-in session. EndTime is nil while the user is still
// clocked in; only closed intervals feed payroll classification.
type Interval struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Hours returns the closed interval's duration in hours, zero while open.
func (iv Interval) Hours() float64 {
	if iv.EndTime == nil {
		return 0
	}
	return iv.EndTime.Sub(iv.StartTime).Hours()
}

type DayStat struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type Stats struct {
	TotalHours float64   `json:"totalHours"`
	Days       []DayStat `json:"days"`
}
