package payrollhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"timekeep/internal/domain/payroll"
	"timekeep/internal/transport/http/api"
	"timekeep/internal/transport/http/middleware"
	"timekeep/internal/transport/http/shared"
)

type Handler struct {
	Payroll *payroll.Service
}

func NewHandler(service *payroll.Service) *Handler {
	return &Handler{Payroll: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/", h.handleList)
		r.Get("/prefill", h.handlePrefill)
		r.Post("/hours", h.handleSaveHours)
		r.Post("/calculate", h.handleCalculate)
		r.Get("/{recordID}", h.handleGet)
		r.Get("/{recordID}/pdf", h.handleDownloadPDF)
	})
}

type saveHoursPayload struct {
	UserID      string                   `json:"userId"`
	Hours       payroll.CategorizedHours `json:"hours"`
	PeriodStart string                   `json:"periodStart"`
	PeriodEnd   string                   `json:"periodEnd"`
}

type calculatePayload struct {
	RecordID string `json:"recordId"`
	UserID   string `json:"userId"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	userID := user.UserID
	if user.IsAdmin() {
		userID = r.URL.Query().Get("userId")
	}
	page := shared.ParsePagination(r, 50, 500)

	records, err := h.Payroll.List(r.Context(), userID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_list_failed", "failed to list payroll records", middleware.GetRequestID(r.Context()))
		return
	}
	if records == nil {
		records = []payroll.Record{}
	}
	api.Success(w, records, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	record, err := h.Payroll.Get(r.Context(), chi.URLParam(r, "recordID"))
	if errors.Is(err, payroll.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_get_failed", "failed to load payroll record", middleware.GetRequestID(r.Context()))
		return
	}
	if !user.IsAdmin() && record.UserID != user.UserID {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSaveHours(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload saveHoursPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	userID := user.UserID
	if payload.UserID != "" && user.IsAdmin() {
		userID = payload.UserID
	}

	start, err := shared.ParseDate(payload.PeriodStart)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid period start", middleware.GetRequestID(r.Context()))
		return
	}
	end, err := shared.ParseDate(payload.PeriodEnd)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid period end", middleware.GetRequestID(r.Context()))
		return
	}

	record, err := h.Payroll.SaveHours(r.Context(), payroll.SaveHoursInput{
		UserID:      userID,
		Hours:       payload.Hours,
		PeriodStart: start,
		PeriodEnd:   end,
	})
	var overlap *payroll.OverlapError
	switch {
	case errors.As(err, &overlap):
		api.FailWithDetails(w, http.StatusConflict, "period_overlap",
			fmt.Sprintf("a payroll record already covers %s to %s",
				overlap.Existing.PeriodStart.Format("2006-01-02"),
				overlap.Existing.PeriodEnd.Format("2006-01-02")),
			overlap.Existing, middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, payroll.ErrInvalidPeriod):
		api.Fail(w, http.StatusBadRequest, "invalid_period", "period end must be after period start", middleware.GetRequestID(r.Context()))
		return
	case errors.Is(err, payroll.ErrUserNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", "user not found", middleware.GetRequestID(r.Context()))
		return
	case err != nil:
		api.Fail(w, http.StatusInternalServerError, "payroll_save_failed", "failed to save payroll hours", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	var payload calculatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	userID := user.UserID
	if payload.UserID != "" && user.IsAdmin() {
		userID = payload.UserID
	}

	if payload.RecordID != "" && !user.IsAdmin() {
		record, err := h.Payroll.Get(r.Context(), payload.RecordID)
		if errors.Is(err, payroll.ErrRecordNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", middleware.GetRequestID(r.Context()))
			return
		}
		if err != nil {
			api.Fail(w, http.StatusInternalServerError, "payroll_calculate_failed", "failed to calculate pay", middleware.GetRequestID(r.Context()))
			return
		}
		if record.UserID != user.UserID {
			api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", middleware.GetRequestID(r.Context()))
			return
		}
	}

	record, err := h.Payroll.Calculate(r.Context(), payload.RecordID, userID)
	if errors.Is(err, payroll.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_calculate_failed", "failed to calculate pay", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, record, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handlePrefill(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	userID := user.UserID
	if requested := r.URL.Query().Get("userId"); requested != "" && user.IsAdmin() {
		userID = requested
	}

	start, err := shared.ParseDate(r.URL.Query().Get("periodStart"))
	if err != nil || start.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid period start", middleware.GetRequestID(r.Context()))
		return
	}
	end, err := shared.ParseDate(r.URL.Query().Get("periodEnd"))
	if err != nil || end.IsZero() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid period end", middleware.GetRequestID(r.Context()))
		return
	}

	hours, err := h.Payroll.Prefill(r.Context(), userID, start, end)
	if errors.Is(err, payroll.ErrUserNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "user not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payroll_prefill_failed", "failed to classify work intervals", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, hours, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDownloadPDF(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	recordID := chi.URLParam(r, "recordID")
	record, err := h.Payroll.Get(r.Context(), recordID)
	if errors.Is(err, payroll.ErrRecordNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "payroll record not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to load payroll record", middleware.GetRequestID(r.Context()))
		return
	}
	if !user.IsAdmin() && record.UserID != user.UserID {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", middleware.GetRequestID(r.Context()))
		return
	}

	data, err := h.Payroll.PayslipPDF(r.Context(), recordID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "payslip_failed", "failed to generate payslip", middleware.GetRequestID(r.Context()))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payroll_%s.pdf", recordID))
	if _, err := w.Write(data); err != nil {
		slog.Warn("payslip write failed", "err", err)
	}
}
