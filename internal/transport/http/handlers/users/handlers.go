package usershandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"timekeep/internal/domain/users"
	"timekeep/internal/transport/http/api"
	"timekeep/internal/transport/http/middleware"
	"timekeep/internal/transport/http/shared"
)

type Handler struct {
	Users *users.Store
}

func NewHandler(store *users.Store) *Handler {
	return &Handler{Users: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.With(middleware.RequireAdmin).Get("/", h.handleList)
		r.With(middleware.RequireAdmin).Post("/", h.handleCreate)
		r.Get("/me", h.handleMe)
		r.Get("/{userID}", h.handleGet)
		r.With(middleware.RequireAdmin).Put("/{userID}/payroll-profile", h.handleUpdatePayrollProfile)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 500)

	list, err := h.Users.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "users_list_failed", "failed to list users", middleware.GetRequestID(r.Context()))
		return
	}
	if list == nil {
		list = []users.User{}
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload users.NewUser
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	payload.Email = strings.TrimSpace(strings.ToLower(payload.Email))
	if payload.Email == "" || payload.Password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "email and password required", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.Role == "" {
		payload.Role = users.RoleEmployee
	}
	if payload.Role != users.RoleAdmin && payload.Role != users.RoleEmployee {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "unknown role", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.PayrollCountry == "" {
		payload.PayrollCountry = "CH"
	}
	if payload.NormalWorkingHours <= 0 {
		payload.NormalWorkingHours = 8
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "user_create_failed", "failed to create user", middleware.GetRequestID(r.Context()))
		return
	}

	u, err := h.Users.Create(r.Context(), payload, string(hash))
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "user_create_failed", "failed to create user", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, u, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	h.respondWithUser(w, r, user.UserID)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	userID := chi.URLParam(r, "userID")
	if !user.IsAdmin() && userID != user.UserID {
		api.Fail(w, http.StatusForbidden, "forbidden", "not allowed", middleware.GetRequestID(r.Context()))
		return
	}
	h.respondWithUser(w, r, userID)
}

func (h *Handler) respondWithUser(w http.ResponseWriter, r *http.Request, userID string) {
	u, err := h.Users.GetByID(r.Context(), userID)
	if errors.Is(err, users.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "user not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "user_get_failed", "failed to load user", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, u, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdatePayrollProfile(w http.ResponseWriter, r *http.Request) {
	var payload users.PayrollProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.PayrollCountry == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "payroll country required", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.NormalWorkingHours <= 0 {
		payload.NormalWorkingHours = 8
	}

	u, err := h.Users.UpdatePayrollProfile(r.Context(), chi.URLParam(r, "userID"), payload)
	if errors.Is(err, users.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "user not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "user_update_failed", "failed to update payroll profile", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, u, middleware.GetRequestID(r.Context()))
}
