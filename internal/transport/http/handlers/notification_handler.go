package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"diaryhub/internal/service"
	"diaryhub/internal/transport/http/middleware"
)

type NotificationHandler struct {
	notificationService *service.NotificationService
}

func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	notifications, err := h.notificationService.ListForRecipient(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoNotifications) {
			writeWarning(w, http.StatusOK, "user has no notifications")
		} else {
			log.Printf("ERROR list notifications: %v", err)
			writeWarning(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, notifications)
}

// MarkRead stamps read_at; the only mutation notifications allow.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	notificationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeWarning(w, http.StatusNotFound, "Notification Not Found")
		return
	}

	notification, err := h.notificationService.MarkRead(r.Context(), userID, notificationID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotificationNotFound):
			writeWarning(w, http.StatusNotFound, "Notification Not Found")
		case errors.Is(err, service.ErrNotOwner):
			writeWarning(w, http.StatusUnauthorized, "Not Allowed, you are not owner")
		default:
			log.Printf("ERROR mark notification read: %v", err)
			writeWarning(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":      "notification marked as read",
		"notification": notification,
	})
}
