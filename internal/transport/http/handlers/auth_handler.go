package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"diaryhub/internal/service"
	"diaryhub/internal/transport/http/middleware"
	"diaryhub/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeWarning(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateRegister(input.Username, input.Fullname, input.Email, input.Password); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			writeWarning(w, http.StatusConflict, "Username already taken")
		case errors.Is(err, service.ErrEmailTaken):
			writeWarning(w, http.StatusConflict, "Email already taken")
		default:
			log.Printf("ERROR register: %v", err)
			writeWarning(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"success": user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeWarning(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateLogin(input.Username, input.Password); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	token, err := h.authService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCreds) {
			writeWarning(w, http.StatusUnauthorized, "Invalid username or password")
		} else {
			log.Printf("ERROR login: %v", err)
			writeWarning(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Logout revokes the presented token. Runs behind the auth middleware, so the
// header is known to carry a currently valid token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(middleware.TokenHeader)

	if err := h.authService.Logout(r.Context(), token); err != nil {
		log.Printf("ERROR logout: %v", err)
		writeWarning(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"success": "Successfully logged out"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeWarning(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"warning": message})
}

func writeValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"warning": "Validation failed",
		"fields":  errs,
	})
}
