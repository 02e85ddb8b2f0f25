package resident

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound é retornado quando nenhum morador corresponde ao e-mail.
	ErrNotFound = errors.New("account not found")
	// ErrEmailTaken indica e-mail já cadastrado (sinal autoritativo vem
	// da constraint UNIQUE do banco).
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials indica senha incorreta.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Resident representa um morador cadastrado no portal.
// O hash de senha nunca é serializado.
type Resident struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegisterInput encapsula os campos do cadastro.
type RegisterInput struct {
	FullName string
	Email    string
	Phone    *string
	Password string
}

// CreateParams é o registro pronto para persistência.
type CreateParams struct {
	FullName     string
	Email        string
	Phone        *string
	PasswordHash string
}
