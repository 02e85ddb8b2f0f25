package http

import (
	"encoding/json"
	"net/http"
)

// AdminLogin valida o par sentinela de credenciais administrativas.
// Não consulta o diretório de moradores: a capacidade de admin é uma
// credencial fixa vinda da configuração (o cliente legado fazia essa
// checagem localmente; aqui ela pode ser delegada ao servidor).
func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !h.admin.Verify(payload.Email, payload.Password) {
		WriteError(w, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    map[string]string{"role": "admin", "email": h.admin.Email()},
	})
}
