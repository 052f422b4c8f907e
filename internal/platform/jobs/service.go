package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"timekeep/internal/domain/notifications"
	"timekeep/internal/domain/payroll"
	"timekeep/internal/domain/users"
	"timekeep/internal/domain/worktime"
	"timekeep/internal/platform/config"
)

const (
	JobPeriodReminder = "payroll_period_reminder"
	JobStaleCleanup   = "stale_interval_cleanup"
)

// Service runs the recurring background tasks: the payroll period-end
// reminder and the stale clock-in sweep. Both handlers are idempotent; a
// per-day last-run guard keeps a cron re-fire or restart within the same
// calendar day from doubling work.
type Service struct {
	DB       *pgxpool.Pool
	Cfg      config.Config
	Users    *users.Store
	Worktime *worktime.Store
	Notifier *notifications.Service

	queue chan job
	cron  *cron.Cron
	now   func() time.Time

	mu      sync.Mutex
	lastRun map[string]string
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

func New(db *pgxpool.Pool, cfg config.Config, userStore *users.Store, worktimeStore *worktime.Store, notifier *notifications.Service) *Service {
	return &Service{
		DB:       db,
		Cfg:      cfg,
		Users:    userStore,
		Worktime: worktimeStore,
		Notifier: notifier,
		queue:    make(chan job, 64),
		cron:     cron.New(),
		now:      time.Now,
		lastRun:  make(map[string]string),
	}
}

func (s *Service) Start(ctx context.Context) error {
	go s.worker(ctx)

	if _, err := s.cron.AddFunc(s.Cfg.ReminderSchedule, func() {
		s.trigger(JobPeriodReminder, s.runPeriodReminder)
	}); err != nil {
		return fmt.Errorf("reminder schedule: %w", err)
	}
	if _, err := s.cron.AddFunc(s.Cfg.CleanupSchedule, func() {
		s.trigger(JobStaleCleanup, s.runStaleCleanup)
	}); err != nil {
		return fmt.Errorf("cleanup schedule: %w", err)
	}

	s.cron.Start()
	go func() {
		<-ctx.Done()
		s.cron.Stop()
	}()
	return nil
}

// trigger enqueues a job unless it already ran today.
func (s *Service) trigger(jobType string, run func(context.Context) (any, error)) {
	if !s.markRun(jobType, s.now()) {
		slog.Info("job already ran today, skipping", "jobType", jobType)
		return
	}
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

// markRun records the run date and reports whether the job may run. The
// second call for the same type on the same day returns false.
func (s *Service) markRun(jobType string, now time.Time) bool {
	date := now.Format("2006-01-02")
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastRun[jobType] == date {
		return false
	}
	s.lastRun[jobType] = date
	return true
}

// RunNow executes a job immediately, bypassing the daily guard. Used by
// admin endpoints and tests.
func (s *Service) RunNow(ctx context.Context, jobType string) (any, error) {
	switch jobType {
	case JobPeriodReminder:
		return s.runJob(ctx, job{Type: jobType, Run: s.runPeriodReminder})
	case JobStaleCleanup:
		return s.runJob(ctx, job{Type: jobType, Run: s.runStaleCleanup})
	default:
		return nil, fmt.Errorf("unknown job type %q", jobType)
	}
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}

// runJob records the run in job_runs around executing it.
func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	runID := ""
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO job_runs (job_type, status)
    VALUES ($1, $2)
    RETURNING id
  `, j.Type, "running").Scan(&runID); err != nil {
		slog.Warn("job run insert failed", "err", err)
	}

	details, err := j.Run(ctx)
	status := "completed"
	if err != nil {
		status = "failed"
	}
	detailsJSON, marshalErr := json.Marshal(details)
	if marshalErr != nil {
		slog.Warn("job details marshal failed", "err", marshalErr)
		detailsJSON = []byte("{}")
	}
	if runID != "" {
		if _, updErr := s.DB.Exec(ctx, `
      UPDATE job_runs
      SET status = $1, details_json = $2, completed_at = now()
      WHERE id = $3
    `, status, detailsJSON, runID); updErr != nil {
			slog.Warn("job run update failed", "err", updErr)
		}
	}
	return details, err
}

// runPeriodReminder notifies every user whose pay period ends today that
// their hours are due for submission.
func (s *Service) runPeriodReminder(ctx context.Context) (any, error) {
	countries, err := s.Users.ListIDsAndCountries(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	notified := 0
	for userID, country := range countries {
		periodEnd := payroll.DefaultPeriodEnd(country, today)
		if !sameDate(periodEnd, today) {
			continue
		}
		sent, err := s.Notifier.NotifyOncePerDay(ctx, userID,
			notifications.TypePayrollPeriodEnd,
			"Pay period ends today",
			"Your pay period ends today. Review your tracked hours and submit them for payroll.")
		if err != nil {
			slog.Warn("period reminder failed", "userId", userID, "err", err)
			continue
		}
		if sent {
			notified++
		}
	}
	return map[string]any{"notified": notified}, nil
}

// runStaleCleanup flags clock-ins that were never closed. The interval is
// left untouched; auto-closing would fabricate hours.
func (s *Service) runStaleCleanup(ctx context.Context) (any, error) {
	cutoff := s.now().Add(-s.Cfg.StaleIntervalAge)
	stale, err := s.Worktime.StaleOpen(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	flagged := 0
	for _, iv := range stale {
		sent, err := s.Notifier.NotifyOncePerDay(ctx, iv.UserID,
			notifications.TypeStaleWorkInterval,
			"Open work interval detected",
			fmt.Sprintf("You clocked in on %s and never clocked out. Close or correct the interval so it can be paid.",
				iv.StartTime.Format("2006-01-02 15:04")))
		if err != nil {
			slog.Warn("stale interval notification failed", "intervalId", iv.ID, "err", err)
			continue
		}
		if sent {
			flagged++
		}
	}
	return map[string]any{"staleIntervals": len(stale), "flagged": flagged}, nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
