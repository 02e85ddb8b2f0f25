package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tibungco/portal/internal/request"
)

type submitRequestPayload struct {
	ResidentName  string `json:"resident_name"`
	ResidentEmail string `json:"resident_email"`
	DocumentType  string `json:"document_type"`
	Purpose       string `json:"purpose"`
}

type statusPayload struct {
	Status string `json:"status"`
}

// SubmitRequest registra um novo pedido de documento, sempre Pending.
func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var payload submitRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.requests.Submit(r.Context(), request.SubmitInput{
		ResidentName:  payload.ResidentName,
		ResidentEmail: payload.ResidentEmail,
		DocumentType:  payload.DocumentType,
		Purpose:       payload.Purpose,
	})
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to submit document request")
		return
	}

	WriteJSON(w, http.StatusCreated, created)
}

// ListAllRequests devolve todos os pedidos para a visão administrativa.
func (h *Handler) ListAllRequests(w http.ResponseWriter, r *http.Request) {
	items, err := h.requests.ListAll(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch all requests")
		return
	}
	if items == nil {
		items = []request.DocumentRequest{}
	}

	WriteJSON(w, http.StatusOK, items)
}

// UpdateRequestStatus aplica a transição de status pedida pelo admin.
func (h *Handler) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.requests.SetStatus(r.Context(), id, payload.Status); err != nil {
		switch {
		case errors.Is(err, request.ErrInvalidStatus):
			WriteError(w, http.StatusBadRequest, "Invalid status value")
		case errors.Is(err, request.ErrInvalidTransition):
			WriteError(w, http.StatusBadRequest, "Invalid status transition")
		default:
			WriteError(w, http.StatusInternalServerError, "Failed to update status")
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"message": "Status updated successfully"})
}

// ListResidentRequests devolve os pedidos do morador pelo e-mail.
func (h *Handler) ListResidentRequests(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	items, err := h.requests.ListForResident(r.Context(), email)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Failed to fetch user requests")
		return
	}
	if items == nil {
		items = []request.DocumentRequest{}
	}

	WriteJSON(w, http.StatusOK, items)
}
