package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/tibungco/portal/internal/resident"
)

type registerPayload struct {
	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Password string  `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userBody é o retrato público do morador; a senha nunca volta.
type userBody struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Register cadastra um novo morador.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var payload registerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	if strings.TrimSpace(payload.FullName) == "" ||
		strings.TrimSpace(payload.Email) == "" ||
		strings.TrimSpace(payload.Password) == "" {
		WriteError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	created, err := h.residents.Register(r.Context(), resident.RegisterInput{
		FullName: payload.FullName,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Password: payload.Password,
	})
	if err != nil {
		if errors.Is(err, resident.ErrEmailTaken) {
			WriteError(w, http.StatusConflict, "This account is already registered.")
			return
		}
		WriteError(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Registered successfully",
		"user":    userBody{ID: created.ID.String(), FullName: created.FullName, Email: created.Email},
	})
}

// Login autentica um morador por e-mail e senha.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := h.residents.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, resident.ErrNotFound):
			WriteError(w, http.StatusNotFound, "Account not found.")
		case errors.Is(err, resident.ErrInvalidCredentials):
			WriteError(w, http.StatusUnauthorized, "Invalid credentials.")
		default:
			WriteError(w, http.StatusInternalServerError, "Server error during login.")
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    userBody{ID: res.ID.String(), FullName: res.FullName, Email: res.Email},
	})
}

// Stats devolve a contagem de moradores para exibição.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	total, err := h.residents.Count(r.Context())
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "Could not fetch stats")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]int64{"totalResidents": total})
}
