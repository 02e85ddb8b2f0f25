package http

import (
	"encoding/json"
	"net/http"
)

// WriteJSON serializa o corpo como o cliente espera: sem envelope,
// a estrutura é o próprio corpo da resposta.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError escreve o corpo plano {"error": mensagem}. A taxonomia
// é achatada de propósito: o cliente exibe a mensagem literalmente.
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
