package jobshandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"timekeep/internal/platform/jobs"
	"timekeep/internal/transport/http/api"
	"timekeep/internal/transport/http/middleware"
)

type Handler struct {
	Jobs *jobs.Service
}

func NewHandler(service *jobs.Service) *Handler {
	return &Handler{Jobs: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/admin/jobs", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Post("/{jobType}/run", h.handleRunJob)
	})
}

func (h *Handler) handleRunJob(w http.ResponseWriter, r *http.Request) {
	jobType := chi.URLParam(r, "jobType")
	switch jobType {
	case jobs.JobPeriodReminder, jobs.JobStaleCleanup:
	default:
		api.Fail(w, http.StatusNotFound, "not_found", "unknown job type", middleware.GetRequestID(r.Context()))
		return
	}

	details, err := h.Jobs.RunNow(r.Context(), jobType)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "job_run_failed", "job execution failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"jobType": jobType, "details": details}, middleware.GetRequestID(r.Context()))
}
