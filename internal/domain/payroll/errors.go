package payroll

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("payroll record not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidPeriod  = errors.New("period start must be before period end")
	ErrPeriodOverlap  = errors.New("a payroll record already exists for an overlapping period")
)

// OverlapError reports which existing record blocked a SaveHours call.
type OverlapError struct {
	Existing Record
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%v: %s to %s", ErrPeriodOverlap,
		e.Existing.PeriodStart.Format("2006-01-02"), e.Existing.PeriodEnd.Format("2006-01-02"))
}

func (e *OverlapError) Unwrap() error {
	return ErrPeriodOverlap
}
