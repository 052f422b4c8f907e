package worktime

import (
	"context"
	"time"
)

type Service struct {
	store *Store
	now   func() time.Time
}

func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// Start clocks a user in. A user can only hold one open interval at a time.
func (s *Service) Start(ctx context.Context, userID string) (Interval, error) {
	open, err := s.store.Open(ctx, userID)
	if err != nil {
		return Interval{}, err
	}
	if open != nil {
		return Interval{}, ErrAlreadyClockedIn
	}
	return s.store.Insert(ctx, userID, s.now())
}

// Stop closes the user's open interval.
func (s *Service) Stop(ctx context.Context, userID string) (Interval, error) {
	open, err := s.store.Open(ctx, userID)
	if err != nil {
		return Interval{}, err
	}
	if open == nil {
		return Interval{}, ErrNotClockedIn
	}
	end := s.now()
	if !end.After(open.StartTime) {
		return Interval{}, ErrInvalidInterval
	}
	return s.store.Close(ctx, open.ID, end)
}

// Active returns the user's open interval, or nil when clocked out.
func (s *Service) Active(ctx context.Context, userID string) (*Interval, error) {
	return s.store.Open(ctx, userID)
}

func (s *Service) List(ctx context.Context, userID string, from, to time.Time, limit, offset int) ([]Interval, error) {
	return s.store.List(ctx, userID, from, to, limit, offset)
}

// Update rewrites an interval's boundaries, e.g. to fix a forgotten clock-out.
func (s *Service) Update(ctx context.Context, id string, start time.Time, end *time.Time) (Interval, error) {
	if end != nil && !end.After(start) {
		return Interval{}, ErrInvalidInterval
	}
	return s.store.Update(ctx, id, start, end)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Stats aggregates a user's closed intervals in a period into daily totals.
func (s *Service) Stats(ctx context.Context, userID string, from, to time.Time) (Stats, error) {
	intervals, err := s.store.List(ctx, userID, from, to, 10000, 0)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(intervals), nil
}
