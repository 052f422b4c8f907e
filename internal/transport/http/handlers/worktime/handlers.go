package worktimehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"timekeep/internal/domain/worktime"
	"timekeep/internal/transport/http/api"
	"timekeep/internal/transport/http/middleware"
	"timekeep/internal/transport/http/shared"
)

type Handler struct {
	Worktime *worktime.Service
}

func NewHandler(service *worktime.Service) *Handler {
	return &Handler{Worktime: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/worktime", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Post("/start", h.handleStart)
		r.Post("/stop", h.handleStop)
		r.Get("/active", h.handleActive)
		r.Get("/intervals", h.handleListIntervals)
		r.Put("/intervals/{intervalID}", h.handleUpdateInterval)
		r.Delete("/intervals/{intervalID}", h.handleDeleteInterval)
		r.Get("/stats", h.handleStats)
	})
}

// targetUserID resolves which user a request operates on. Admins may pass
// ?userId= to act on another user; everyone else is pinned to themselves.
func targetUserID(r *http.Request, user middleware.UserContext) string {
	if requested := r.URL.Query().Get("userId"); requested != "" && user.IsAdmin() {
		return requested
	}
	return user.UserID
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	interval, err := h.Worktime.Start(r.Context(), user.UserID)
	if errors.Is(err, worktime.ErrAlreadyClockedIn) {
		api.Fail(w, http.StatusConflict, "already_clocked_in", "an open work interval already exists", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "worktime_start_failed", "failed to start work interval", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, interval, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStop(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	interval, err := h.Worktime.Stop(r.Context(), user.UserID)
	if errors.Is(err, worktime.ErrNotClockedIn) {
		api.Fail(w, http.StatusConflict, "not_clocked_in", "no open work interval", middleware.GetRequestID(r.Context()))
		return
	}
	if errors.Is(err, worktime.ErrInvalidInterval) {
		api.Fail(w, http.StatusBadRequest, "invalid_interval", "interval end must be after start", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "worktime_stop_failed", "failed to stop work interval", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, interval, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleActive(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	interval, err := h.Worktime.Active(r.Context(), targetUserID(r, user))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "worktime_active_failed", "failed to load active interval", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, interval, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListIntervals(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	from, err := shared.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid from date", middleware.GetRequestID(r.Context()))
		return
	}
	to, err := shared.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid to date", middleware.GetRequestID(r.Context()))
		return
	}
	page := shared.ParsePagination(r, 50, 500)

	intervals, err := h.Worktime.List(r.Context(), targetUserID(r, user), from, to, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "worktime_list_failed", "failed to list work intervals", middleware.GetRequestID(r.Context()))
		return
	}
	if intervals == nil {
		intervals = []worktime.Interval{}
	}
	api.Success(w, intervals, middleware.GetRequestID(r.Context()))
}

type intervalPayload struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (h *Handler) handleUpdateInterval(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	if !user.IsAdmin() {
		api.Fail(w, http.StatusForbidden, "forbidden", "admin role required", middleware.GetRequestID(r.Context()))
		return
	}

	var payload intervalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	start, err := shared.ParseDate(payload.StartTime)
	if err != nil || start.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid start time", middleware.GetRequestID(r.Context()))
		return
	}
	var end *time.Time
	if payload.EndTime != "" {
		parsed, err := shared.ParseDate(payload.EndTime)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid end time", middleware.GetRequestID(r.Context()))
			return
		}
		end = &parsed
	}

	interval, err := h.Worktime.Update(r.Context(), chi.URLParam(r, "intervalID"), start, end)
	if errors.Is(err, worktime.ErrInvalidInterval) {
		api.Fail(w, http.StatusBadRequest, "invalid_interval", "interval end must be after start", middleware.GetRequestID(r.Context()))
		return
	}
	if errors.Is(err, worktime.ErrIntervalNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "work interval not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "worktime_update_failed", "failed to update work interval", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, interval, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteInterval(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	if !user.IsAdmin() {
		api.Fail(w, http.StatusForbidden, "forbidden", "admin role required", middleware.GetRequestID(r.Context()))
		return
	}

	err := h.Worktime.Delete(r.Context(), chi.URLParam(r, "intervalID"))
	if errors.Is(err, worktime.ErrIntervalNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "work interval not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "worktime_delete_failed", "failed to delete work interval", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	from, err := shared.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid from date", middleware.GetRequestID(r.Context()))
		return
	}
	to, err := shared.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid to date", middleware.GetRequestID(r.Context()))
		return
	}

	stats, err := h.Worktime.Stats(r.Context(), targetUserID(r, user), from, to)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "worktime_stats_failed", "failed to compute stats", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, stats, middleware.GetRequestID(r.Context()))
}
