package announcement

import (
	"time"

	"github.com/google/uuid"
)

// Tipos reconhecidos pelo cliente. A escrita não é restrita a eles:
// o serviço armazena o que for enviado e o feed decide como exibir.
const (
	TypeAnnouncement = "Announcement"
	TypeEvent        = "Event"
)

// Announcement é um aviso publicado pela administração. A data
// agendada é texto informativo, não uma data validada.
type Announcement struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Details       *string   `json:"details"`
	Type          string    `json:"type"`
	ScheduledDate *string   `json:"scheduled_date"`
	AuthorName    *string   `json:"author_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateInput encapsula os campos de publicação.
type CreateInput struct {
	Title         string
	Details       *string
	Type          string
	ScheduledDate *string
	AuthorName    *string
}
