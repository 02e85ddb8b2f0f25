package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tibungco/portal/internal/announcement"
)

type announcementPayload struct {
	Title         string  `json:"title"`
	Details       *string `json:"details"`
	Type          string  `json:"type"`
	ScheduledDate *string `json:"scheduled_date"`
	AuthorName    *string `json:"author_name"`
}

// ListAnnouncements devolve o feed completo, mais recentes primeiro.
func (h *Handler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	items, err := h.announcements.List(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Could not fetch announcements")
		return
	}
	if items == nil {
		items = []announcement.Announcement{}
	}

	WriteJSON(w, http.StatusOK, items)
}

// CreateAnnouncement publica um novo aviso.
func (h *Handler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var payload announcementPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.announcements.Create(r.Context(), announcement.CreateInput{
		Title:         payload.Title,
		Details:       payload.Details,
		Type:          payload.Type,
		ScheduledDate: payload.ScheduledDate,
		AuthorName:    payload.AuthorName,
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Could not save announcement")
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}

// DeleteAnnouncement remove um aviso em definitivo. Id inexistente
// devolve sucesso do mesmo jeito.
func (h *Handler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid announcement id")
		return
	}

	if err := h.announcements.Delete(r.Context(), id); err != nil {
		WriteError(w, http.StatusInternalServerError, "Delete failed")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"message": "Announcement deleted"})
}
