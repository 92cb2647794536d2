package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"diaryhub/internal/service"
	"diaryhub/internal/transport/http/middleware"
	"diaryhub/pkg/validator"
)

type EntryHandler struct {
	entryService *service.EntryService
}

func NewEntryHandler(entryService *service.EntryService) *EntryHandler {
	return &EntryHandler{entryService: entryService}
}

func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	diaryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeWarning(w, http.StatusNotFound, "Diary Not Found")
		return
	}

	var input service.EntryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeWarning(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateEntry(input.Title); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	entry, err := h.entryService.Create(r.Context(), userID, diaryID, input)
	if err != nil {
		if errors.Is(err, service.ErrDiaryNotFound) {
			writeWarning(w, http.StatusNotFound, "Diary Not Found")
		} else {
			log.Printf("ERROR create entry: %v", err)
			writeWarning(w, http.StatusUnauthorized, "Could not create new entries")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": "successfully created entry",
		"entry":   entry,
	})
}

// ListByDiary is public. An existing diary with no entries answers with a
// warning body, not a 404.
func (h *EntryHandler) ListByDiary(w http.ResponseWriter, r *http.Request) {
	diaryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeWarning(w, http.StatusNotFound, "Diary Not Found")
		return
	}

	entries, err := h.entryService.ListByDiary(r.Context(), diaryID)
	if err != nil {
		if errors.Is(err, service.ErrDiaryNotFound) {
			writeWarning(w, http.StatusNotFound, "Diary Not Found")
		} else {
			log.Printf("ERROR list entries: %v", err)
			writeWarning(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	if len(entries) == 0 {
		writeWarning(w, http.StatusOK, "Diary has no entries")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (h *EntryHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entryService.ListAll(r.Context())
	if err != nil {
		log.Printf("ERROR list all entries: %v", err)
		writeWarning(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if len(entries) == 0 {
		writeWarning(w, http.StatusOK, "No Entry, create one first")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"Entries": entries})
}

func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	diaryID, entryID, ok := pathIDs(w, r)
	if !ok {
		return
	}

	var input service.EntryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeWarning(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := h.entryService.Update(r.Context(), userID, diaryID, entryID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDiaryNotFound):
			writeWarning(w, http.StatusNotFound, "Diary Not Found")
		case errors.Is(err, service.ErrEntryNotFound):
			writeWarning(w, http.StatusNotFound, "Entry Not Found")
		case errors.Is(err, service.ErrNotOwner):
			writeWarning(w, http.StatusUnauthorized, "Not Allowed, you are not owner")
		default:
			log.Printf("ERROR update entry: %v", err)
			writeWarning(w, http.StatusBadRequest, "Entry Not Updated")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": "successfully updated",
		"entry":   entry,
	})
}

func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	diaryID, entryID, ok := pathIDs(w, r)
	if !ok {
		return
	}

	if err := h.entryService.Delete(r.Context(), userID, diaryID, entryID); err != nil {
		switch {
		case errors.Is(err, service.ErrDiaryNotFound):
			writeWarning(w, http.StatusNotFound, "Diary Not Found")
		case errors.Is(err, service.ErrEntryNotFound):
			writeWarning(w, http.StatusNotFound, "Entry Not Found")
		case errors.Is(err, service.ErrNotOwner):
			writeWarning(w, http.StatusUnauthorized, "Not Allowed, you are not owner")
		default:
			log.Printf("ERROR delete entry: %v", err)
			writeWarning(w, http.StatusBadRequest, "Entry Not Deleted")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"success": "Entry Deleted"})
}

// pathIDs parses {id} and {eid}. An unparsable id maps to the matching
// not-found body, keeping the existence-before-ownership order intact.
func pathIDs(w http.ResponseWriter, r *http.Request) (diaryID, entryID uuid.UUID, ok bool) {
	diaryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeWarning(w, http.StatusNotFound, "Diary Not Found")
		return uuid.Nil, uuid.Nil, false
	}
	entryID, err = uuid.Parse(r.PathValue("eid"))
	if err != nil {
		writeWarning(w, http.StatusNotFound, "Entry Not Found")
		return uuid.Nil, uuid.Nil, false
	}
	return diaryID, entryID, true
}
