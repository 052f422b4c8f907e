package payroll

import "time"

// Profile carries the payroll-relevant fields of a user.
type Profile struct {
	UserID             string   `json:"userId"`
	Country            string   `json:"payrollCountry"`
	ContractType       string   `json:"contractType,omitempty"`
	HourlyRate         *float64 `json:"hourlyRate,omitempty"`
	MonthlySalary      *float64 `json:"monthlySalary,omitempty"`
	NormalWorkingHours float64  `json:"normalWorkingHours"`
}

// CategorizedHours holds the classified hour totals for one pay period.
// Categories are mutually exclusive: every worked hour lands in at most one
// bucket. Holiday is carried separately from SundayHoliday because Swiss pay
// uses only the plain holiday bucket while Colombian pay uses both.
type CategorizedHours struct {
	Regular                    float64 `json:"regular"`
	Overtime                   float64 `json:"overtime"`
	Night                      float64 `json:"night"`
	Holiday                    float64 `json:"holidayHours"`
	SundayHoliday              float64 `json:"sundayHoliday"`
	OvertimeNight              float64 `json:"overtimeNight"`
	OvertimeSundayHoliday      float64 `json:"overtimeSundayHoliday"`
	OvertimeNightSundayHoliday float64 `json:"overtimeNightSundayHoliday"`
}

// Total sums all buckets.
func (h CategorizedHours) Total() float64 {
	return h.Regular + h.Overtime + h.Night + h.Holiday + h.SundayHoliday +
		h.OvertimeNight + h.OvertimeSundayHoliday + h.OvertimeNightSundayHoliday
}

// Record is one persisted payroll computation for a user and period. Created
// with zeroed pay fields by SaveHours and enriched later by Calculate.
type Record struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
	CategorizedHours
	HourlyRate     float64   `json:"hourlyRate"`
	GrossPay       float64   `json:"grossPay"`
	Deductions     float64   `json:"deductions"`
	SocialSecurity float64   `json:"socialSecurity"`
	Taxes          float64   `json:"taxes"`
	NetPay         float64   `json:"netPay"`
	Currency       string    `json:"currency"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Interval is one completed clocked-in session. Open sessions never reach the
// classifier; callers filter them out before classification.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Hours returns the raw duration of the interval in hours.
func (iv Interval) Hours() float64 {
	return iv.End.Sub(iv.Start).Hours()
}
