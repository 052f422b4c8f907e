package notifications

import (
	"context"
	"log/slog"
)

type Mailer interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

type Service struct {
	store       *Store
	Mailer      Mailer
	DefaultFrom string
}

func New(store *Store, mailer Mailer, from string) *Service {
	if from == "" {
		from = "no-reply@example.com"
	}
	return &Service{store: store, Mailer: mailer, DefaultFrom: from}
}

// Notify persists a notification and best-effort emails the user. Email
// failures are logged, never surfaced: the in-app notification is the source
// of truth.
func (s *Service) Notify(ctx context.Context, userID, ntype, title, body string) error {
	if _, err := s.store.Insert(ctx, userID, ntype, title, body); err != nil {
		return err
	}

	if s.Mailer == nil {
		return nil
	}
	email, err := s.store.UserEmail(ctx, userID)
	if err != nil {
		slog.Warn("notification email lookup failed", "err", err)
		return nil
	}
	if email == "" {
		return nil
	}
	if err := s.Mailer.Send(ctx, s.DefaultFrom, email, title, body); err != nil {
		slog.Warn("notification email send failed", "err", err)
	}
	return nil
}

// NotifyOncePerDay skips the notification when one of the same type was
// already created for the user today.
func (s *Service) NotifyOncePerDay(ctx context.Context, userID, ntype, title, body string) (bool, error) {
	exists, err := s.store.ExistsForToday(ctx, userID, ntype)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := s.Notify(ctx, userID, ntype, title, body); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Notification, error) {
	return s.store.List(ctx, userID, limit, offset)
}

func (s *Service) MarkRead(ctx context.Context, id, userID string) error {
	return s.store.MarkRead(ctx, id, userID)
}
