package notificationshandler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"timekeep/internal/domain/notifications"
	"timekeep/internal/transport/http/api"
	"timekeep/internal/transport/http/middleware"
	"timekeep/internal/transport/http/shared"
)

type Handler struct {
	Notifications *notifications.Service
}

func NewHandler(service *notifications.Service) *Handler {
	return &Handler{Notifications: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Use(middleware.RequireUser)
		r.Get("/", h.handleList)
		r.Post("/{notificationID}/read", h.handleMarkRead)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())
	page := shared.ParsePagination(r, 50, 200)

	list, err := h.Notifications.List(r.Context(), user.UserID, page.Limit, page.Offset)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "notifications_list_failed", "failed to list notifications", middleware.GetRequestID(r.Context()))
		return
	}
	if list == nil {
		list = []notifications.Notification{}
	}
	api.Success(w, list, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.GetUser(r.Context())

	err := h.Notifications.MarkRead(r.Context(), chi.URLParam(r, "notificationID"), user.UserID)
	if errors.Is(err, notifications.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "notification not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "notification_read_failed", "failed to mark notification read", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "read"}, middleware.GetRequestID(r.Context()))
}
