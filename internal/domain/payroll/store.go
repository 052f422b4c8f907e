package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const recordColumns = `
    id, user_id, period_start, period_end,
    regular_hours, overtime_hours, night_hours, holiday_hours,
    sunday_holiday_hours, overtime_night_hours, overtime_sunday_holiday_hours,
    overtime_night_sunday_holiday_hours,
    hourly_rate, gross_pay, deductions, social_security, taxes, net_pay,
    currency, created_at`

func scanRecord(row pgx.Row) (Record, error) {
	var r Record
	err := row.Scan(
		&r.ID, &r.UserID, &r.PeriodStart, &r.PeriodEnd,
		&r.Regular, &r.Overtime, &r.Night, &r.Holiday,
		&r.SundayHoliday, &r.OvertimeNight, &r.OvertimeSundayHoliday,
		&r.OvertimeNightSundayHoliday,
		&r.HourlyRate, &r.GrossPay, &r.Deductions, &r.SocialSecurity, &r.Taxes, &r.NetPay,
		&r.Currency, &r.CreatedAt,
	)
	return r, err
}

// GetProfile loads the payroll-relevant columns of a user.
func (s *Store) GetProfile(ctx context.Context, userID string) (Profile, error) {
	var p Profile
	err := s.DB.QueryRow(ctx, `
    SELECT id, payroll_country, COALESCE(contract_type, ''),
           hourly_rate, monthly_salary, COALESCE(normal_working_hours, 8)
    FROM users
    WHERE id = $1
  `, userID).Scan(&p.UserID, &p.Country, &p.ContractType, &p.HourlyRate, &p.MonthlySalary, &p.NormalWorkingHours)
	if errors.Is(err, pgx.ErrNoRows) {
		return Profile{}, ErrUserNotFound
	}
	return p, err
}

// FindOverlapping returns the first payroll record for the user whose period
// overlaps [start, end], or nil when the period is free.
func (s *Store) FindOverlapping(ctx context.Context, userID string, start, end time.Time) (*Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+recordColumns+`
    FROM payroll_records
    WHERE user_id = $1 AND period_start <= $3 AND period_end >= $2
    ORDER BY period_start
    LIMIT 1
  `, userID, start, end)
	r, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) Insert(ctx context.Context, r Record) (Record, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO payroll_records (
      user_id, period_start, period_end,
      regular_hours, overtime_hours, night_hours, holiday_hours,
      sunday_holiday_hours, overtime_night_hours, overtime_sunday_holiday_hours,
      overtime_night_sunday_holiday_hours,
      hourly_rate, gross_pay, deductions, social_security, taxes, net_pay, currency
    )
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
    RETURNING `+recordColumns+`
  `, r.UserID, r.PeriodStart, r.PeriodEnd,
		r.Regular, r.Overtime, r.Night, r.Holiday,
		r.SundayHoliday, r.OvertimeNight, r.OvertimeSundayHoliday,
		r.OvertimeNightSundayHoliday,
		r.HourlyRate, r.GrossPay, r.Deductions, r.SocialSecurity, r.Taxes, r.NetPay, r.Currency)
	return scanRecord(row)
}

func (s *Store) GetByID(ctx context.Context, id string) (Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+recordColumns+`
    FROM payroll_records
    WHERE id = $1
  `, id)
	r, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrRecordNotFound
	}
	return r, err
}

// LatestForUser returns the most recently created record for a user.
func (s *Store) LatestForUser(ctx context.Context, userID string) (Record, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+recordColumns+`
    FROM payroll_records
    WHERE user_id = $1
    ORDER BY created_at DESC
    LIMIT 1
  `, userID)
	r, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrRecordNotFound
	}
	return r, err
}

// List returns records newest first, optionally filtered by user.
func (s *Store) List(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+recordColumns+`
    FROM payroll_records
    WHERE ($1 = '' OR user_id::text = $1)
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3
  `, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// UpdatePay fills in the computed pay fields of a record.
func (s *Store) UpdatePay(ctx context.Context, id string, gross, deductions, socialSecurity, taxes, net float64) (Record, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE payroll_records
    SET gross_pay = $2, deductions = $3, social_security = $4, taxes = $5, net_pay = $6
    WHERE id = $1
    RETURNING `+recordColumns+`
  `, id, gross, deductions, socialSecurity, taxes, net)
	r, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrRecordNotFound
	}
	return r, err
}

// CompletedIntervals returns the closed work intervals of a user inside a
// period, ordered by start time. Open intervals are excluded.
func (s *Store) CompletedIntervals(ctx context.Context, userID string, start, end time.Time) ([]Interval, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT start_time, end_time
    FROM work_intervals
    WHERE user_id = $1
      AND start_time >= $2
      AND end_time IS NOT NULL
      AND end_time <= $3
    ORDER BY start_time
  `, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intervals []Interval
	for rows.Next() {
		var iv Interval
		if err := rows.Scan(&iv.Start, &iv.End); err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return intervals, rows.Err()
}

// PayslipHeader carries the user fields rendered on a payslip.
type PayslipHeader struct {
	FirstName string
	LastName  string
	Email     string
	Country   string
	Contract  string
}

func (s *Store) GetPayslipHeader(ctx context.Context, userID string) (PayslipHeader, error) {
	var h PayslipHeader
	err := s.DB.QueryRow(ctx, `
    SELECT first_name, last_name, email, payroll_country, COALESCE(contract_type, '')
    FROM users
    WHERE id = $1
  `, userID).Scan(&h.FirstName, &h.LastName, &h.Email, &h.Country, &h.Contract)
	if errors.Is(err, pgx.ErrNoRows) {
		return PayslipHeader{}, ErrUserNotFound
	}
	return h, err
}
