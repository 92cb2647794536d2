package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"diaryhub/internal/service"
	"diaryhub/internal/transport/http/middleware"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		log.Printf("ERROR list users: %v", err)
		writeWarning(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if len(users) == 0 {
		writeWarning(w, http.StatusOK, "No Users")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeWarning(w, http.StatusNotFound, "user does not exist")
		return
	}

	user, err := h.userService.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeWarning(w, http.StatusNotFound, "user does not exist")
		} else {
			log.Printf("ERROR get user: %v", err)
			writeWarning(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (h *UserHandler) Diaries(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeWarning(w, http.StatusOK, "user does not own a diary")
		return
	}

	diaries, err := h.userService.Diaries(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoDiaries) {
			writeWarning(w, http.StatusOK, "user does not own a diary")
		} else {
			log.Printf("ERROR user diaries: %v", err)
			writeWarning(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, diaries)
}

// Delete removes an account and cascades to everything it owns. Restricted
// to the account itself.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.GetUserID(r.Context())
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeWarning(w, http.StatusNotFound, "user does not exist")
		return
	}

	if err := h.userService.Delete(r.Context(), callerID, userID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeWarning(w, http.StatusNotFound, "user does not exist")
		case errors.Is(err, service.ErrNotOwner):
			writeWarning(w, http.StatusUnauthorized, "Not Allowed, you are not owner")
		default:
			log.Printf("ERROR delete user: %v", err)
			writeWarning(w, http.StatusBadRequest, "User Not Deleted")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"success": "User Deleted"})
}
