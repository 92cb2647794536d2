package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"diaryhub/internal/domain"
	"diaryhub/internal/service"
	"diaryhub/internal/transport/http/middleware"
	"diaryhub/pkg/validator"
)

type DiaryHandler struct {
	diaryService *service.DiaryService
}

func NewDiaryHandler(diaryService *service.DiaryService) *DiaryHandler {
	return &DiaryHandler{diaryService: diaryService}
}

// List is public. Supports ?page, ?limit, ?location, ?category and ?q; see
// the repository for how filter combinations are prioritized.
func (h *DiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	params := domain.DiarySearch{
		Page:     queryInt(r, "page", 1),
		Limit:    queryInt(r, "limit", 5),
		Location: r.URL.Query().Get("location"),
		Category: r.URL.Query().Get("category"),
		Query:    r.URL.Query().Get("q"),
	}

	diaries, err := h.diaryService.Search(r.Context(), params)
	if err != nil {
		log.Printf("ERROR list diaries: %v", err)
		writeWarning(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if len(diaries) == 0 {
		writeWarning(w, http.StatusOK, "No Diaries, create one first")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"diaries": diaries})
}

func (h *DiaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.DiaryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeWarning(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateDiary(input.Name); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	diary, err := h.diaryService.Create(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrNameTaken) {
			writeWarning(w, http.StatusConflict, fmt.Sprintf("Diary name %s already taken", input.Name))
		} else {
			log.Printf("ERROR create diary: %v", err)
			writeWarning(w, http.StatusUnauthorized, "Could not create new diary")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": "successfully created diary",
		"diary":   diary,
	})
}

func (h *DiaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	diaryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeWarning(w, http.StatusNotFound, "Diary Not Found")
		return
	}

	diary, err := h.diaryService.Get(r.Context(), diaryID)
	if err != nil {
		if errors.Is(err, service.ErrDiaryNotFound) {
			writeWarning(w, http.StatusNotFound, "Diary Not Found")
		} else {
			log.Printf("ERROR get diary: %v", err)
			writeWarning(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"diary": diary})
}

func (h *DiaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	diaryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeWarning(w, http.StatusNotFound, "Diary Not Found")
		return
	}

	var input service.DiaryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeWarning(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	diary, err := h.diaryService.Update(r.Context(), userID, diaryID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDiaryNotFound):
			writeWarning(w, http.StatusNotFound, "Diary Not Found")
		case errors.Is(err, service.ErrNotOwner):
			writeWarning(w, http.StatusUnauthorized, "Not Allowed, you are not owner")
		default:
			log.Printf("ERROR update diary: %v", err)
			writeWarning(w, http.StatusBadRequest, "Diary Not Updated")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": "successfully updated",
		"diary":   diary,
	})
}

func (h *DiaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	diaryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeWarning(w, http.StatusNotFound, "Diary Not Found")
		return
	}

	if err := h.diaryService.Delete(r.Context(), userID, diaryID); err != nil {
		switch {
		case errors.Is(err, service.ErrDiaryNotFound):
			writeWarning(w, http.StatusNotFound, "Diary Not Found")
		case errors.Is(err, service.ErrNotOwner):
			writeWarning(w, http.StatusUnauthorized, "Not Allowed, you are not owner")
		default:
			log.Printf("ERROR delete diary: %v", err)
			writeWarning(w, http.StatusBadRequest, "Diary Not Deleted")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"success": "Diary Deleted"})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
