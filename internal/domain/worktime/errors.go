package worktime

import "errors"

var (
	ErrAlreadyClockedIn = errors.New("an open work interval already exists")
	ErrNotClockedIn     = errors.New("no open work interval to stop")
	ErrIntervalNotFound = errors.New("work interval not found")
	ErrInvalidInterval  = errors.New("end time must be after start time")
)
