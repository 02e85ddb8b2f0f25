package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound é retornado quando o pedido não existe.
	ErrNotFound = errors.New("request not found")
	// ErrInvalidStatus indica um valor fora do conjunto reconhecido.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidTransition indica uma transição ilegal de status.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Status é o estado do ciclo de vida de um pedido de documento.
type Status string

// Máquina de dois estados: Pending é o inicial, Completed o terminal.
const (
	StatusPending   Status = "Pending"
	StatusCompleted Status = "Completed"
)

var validStatuses = map[Status]struct{}{
	StatusPending:   {},
	StatusCompleted: {},
}

// ParseStatus valida o valor enviado pelo cliente. O conjunto é
// fechado de propósito: o painel admin só envia Completed, e aceitar
// string arbitrária deixaria pedidos em estados que nenhuma tela sabe
// exibir.
func ParseStatus(raw string) (Status, error) {
	status := Status(strings.TrimSpace(raw))
	if _, ok := validStatuses[status]; !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CanTransitionTo responde se a transição é legal. A única aresta do
// grafo é Pending -> Completed.
func (s Status) CanTransitionTo(target Status) bool {
	return s == StatusPending && target == StatusCompleted
}

// DocumentRequest é o pedido de documento de um morador. Nome e
// e-mail são um retrato desnormalizado do morador no momento do
// envio, não uma chave estrangeira.
type DocumentRequest struct {
	ID            uuid.UUID `json:"id"`
	ResidentName  string    `json:"resident_name"`
	ResidentEmail string    `json:"resident_email"`
	DocumentType  string    `json:"document_type"`
	Purpose       string    `json:"purpose"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// SubmitInput encapsula os campos de um novo pedido.
type SubmitInput struct {
	ResidentName  string
	ResidentEmail string
	DocumentType  string
	Purpose       string
}
