package notifications

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("notification not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Insert(ctx context.Context, userID, ntype, title, body string) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO notifications (user_id, type, title, body)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, userID, ntype, title, body).Scan(&id)
	return id, err
}

// ExistsForToday reports whether a notification of the given type was already
// created for the user today. Keeps the daily jobs idempotent.
func (s *Store) ExistsForToday(ctx context.Context, userID, ntype string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM notifications
    WHERE user_id = $1 AND type = $2 AND created_at::date = now()::date
  `, userID, ntype).Scan(&count)
	return count > 0, err
}

func (s *Store) List(ctx context.Context, userID string, limit, offset int) ([]Notification, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, user_id, type, title, body, created_at, read_at
    FROM notifications
    WHERE user_id = $1
    ORDER BY created_at DESC
    LIMIT $2 OFFSET $3
  `, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Body, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (s *Store) MarkRead(ctx context.Context, id, userID string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE notifications
    SET read_at = now()
    WHERE id = $1 AND user_id = $2 AND read_at IS NULL
  `, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UserEmail(ctx context.Context, userID string) (string, error) {
	var email string
	err := s.DB.QueryRow(ctx, "SELECT email FROM users WHERE id = $1", userID).Scan(&email)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return email, err
}
