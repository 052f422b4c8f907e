package worktime

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

const intervalColumns = "id, user_id, start_time, end_time, created_at"

func scanInterval(row pgx.Row) (Interval, error) {
	var iv Interval
	err := row.Scan(&iv.ID, &iv.UserID, &iv.StartTime, &iv.EndTime, &iv.CreatedAt)
	return iv, err
}

// Open returns the user's currently open interval, or nil.
func (s *Store) Open(ctx context.Context, userID string) (*Interval, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+intervalColumns+`
    FROM work_intervals
    WHERE user_id = $1 AND end_time IS NULL
    ORDER BY start_time DESC
    LIMIT 1
  `, userID)
	iv, err := scanInterval(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (s *Store) Insert(ctx context.Context, userID string, start time.Time) (Interval, error) {
	row := s.DB.QueryRow(ctx, `
    INSERT INTO work_intervals (user_id, start_time)
    VALUES ($1, $2)
    RETURNING `+intervalColumns+`
  `, userID, start)
	return scanInterval(row)
}

func (s *Store) Close(ctx context.Context, id string, end time.Time) (Interval, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE work_intervals
    SET end_time = $2
    WHERE id = $1
    RETURNING `+intervalColumns+`
  `, id, end)
	iv, err := scanInterval(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Interval{}, ErrIntervalNotFound
	}
	return iv, err
}

// List returns a user's intervals inside [from, to], newest first. Zero
// boundaries disable the respective filter.
func (s *Store) List(ctx context.Context, userID string, from, to time.Time, limit, offset int) ([]Interval, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+intervalColumns+`
    FROM work_intervals
    WHERE ($1 = '' OR user_id::text = $1)
      AND ($2::timestamptz IS NULL OR start_time >= $2)
      AND ($3::timestamptz IS NULL OR start_time <= $3)
    ORDER BY start_time DESC
    LIMIT $4 OFFSET $5
  `, userID, nullableTime(from), nullableTime(to), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intervals []Interval
	for rows.Next() {
		iv, err := scanInterval(rows)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return intervals, rows.Err()
}

func (s *Store) GetByID(ctx context.Context, id string) (Interval, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+intervalColumns+`
    FROM work_intervals
    WHERE id = $1
  `, id)
	iv, err := scanInterval(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Interval{}, ErrIntervalNotFound
	}
	return iv, err
}

func (s *Store) Update(ctx context.Context, id string, start time.Time, end *time.Time) (Interval, error) {
	row := s.DB.QueryRow(ctx, `
    UPDATE work_intervals
    SET start_time = $2, end_time = $3
    WHERE id = $1
    RETURNING `+intervalColumns+`
  `, id, start, end)
	iv, err := scanInterval(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Interval{}, ErrIntervalNotFound
	}
	return iv, err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM work_intervals WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrIntervalNotFound
	}
	return nil
}

// StaleOpen returns open intervals that started before the cutoff, oldest
// first. Used by the cleanup job to flag forgotten clock-ins.
func (s *Store) StaleOpen(ctx context.Context, cutoff time.Time) ([]Interval, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+intervalColumns+`
    FROM work_intervals
    WHERE end_time IS NULL AND start_time < $1
    ORDER BY start_time
  `, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var intervals []Interval
	for rows.Next() {
		iv, err := scanInterval(rows)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return intervals, rows.Err()
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
