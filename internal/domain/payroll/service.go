package payroll

import (
	"context"
	"time"

	cryptoutil "timekeep/internal/platform/crypto"
)

type Service struct {
	store      *Store
	crypto     *cryptoutil.Service
	payslipDir string
	now        func() time.Time
}

func NewService(store *Store, crypto *cryptoutil.Service, payslipDir string) *Service {
	return &Service{
		store:      store,
		crypto:     crypto,
		payslipDir: payslipDir,
		now:        time.Now,
	}
}

type SaveHoursInput struct {
	UserID      string
	Hours       CategorizedHours
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// SaveHours creates a payroll record for a period from already-categorized
// hours. The period must not overlap any existing record for the user; when
// no period is given it defaults to [today, country pay day]. Pay fields stay
// zero until Calculate runs.
func (s *Service) SaveHours(ctx context.Context, input SaveHoursInput) (Record, error) {
	profile, err := s.store.GetProfile(ctx, input.UserID)
	if err != nil {
		return Record{}, err
	}

	start, end := input.PeriodStart, input.PeriodEnd
	if start.IsZero() || end.IsZero() {
		start = s.now()
		end = DefaultPeriodEnd(profile.Country, start)
	}
	if !start.Before(end) {
		return Record{}, ErrInvalidPeriod
	}

	existing, err := s.store.FindOverlapping(ctx, input.UserID, start, end)
	if err != nil {
		return Record{}, err
	}
	if existing != nil {
		return Record{}, &OverlapError{Existing: *existing}
	}

	record := Record{
		UserID:           input.UserID,
		PeriodStart:      start,
		PeriodEnd:        end,
		CategorizedHours: input.Hours,
		HourlyRate:       EffectiveHourlyRate(profile),
		Currency:         CurrencyFor(profile.Country),
	}
	return s.store.Insert(ctx, record)
}

// Calculate fills in gross pay, deductions and net pay on a record. When
// recordID is empty the latest record of userID is used.
func (s *Service) Calculate(ctx context.Context, recordID, userID string) (Record, error) {
	var record Record
	var err error
	if recordID != "" {
		record, err = s.store.GetByID(ctx, recordID)
	} else {
		record, err = s.store.LatestForUser(ctx, userID)
	}
	if err != nil {
		return Record{}, err
	}

	profile, err := s.store.GetProfile(ctx, record.UserID)
	if err != nil {
		return Record{}, err
	}

	gross := GrossPay(record, profile.Country)
	deductions := Deductions(gross, profile.Country)
	socialSecurity, taxes := SplitDeductions(deductions)
	net := gross - deductions

	return s.store.UpdatePay(ctx, record.ID, gross, deductions, socialSecurity, taxes, net)
}

// Prefill classifies the user's completed work intervals inside a period so
// the caller can review the buckets before saving them.
func (s *Service) Prefill(ctx context.Context, userID string, start, end time.Time) (CategorizedHours, error) {
	profile, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return CategorizedHours{}, err
	}

	intervals, err := s.store.CompletedIntervals(ctx, userID, start, end)
	if err != nil {
		return CategorizedHours{}, err
	}

	return ClassifyIntervals(intervals, profile), nil
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	return s.store.List(ctx, userID, limit, offset)
}

func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	return s.store.GetByID(ctx, id)
}
