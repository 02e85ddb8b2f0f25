package announcement

import (
	"context"

	"github.com/google/uuid"
)

// Store abstrai a persistência de avisos.
type Store interface {
	Insert(ctx context.Context, input CreateInput) (*Announcement, error)
	List(ctx context.Context) ([]Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service expõe as operações de avisos. Não há validação de campos
// nesta fronteira: o cliente é quem exige título/mensagem antes de
// enviar, e o serviço aceita o que chegar, inclusive nulos.
type Service struct {
	store Store
}

// NewService cria uma nova instância do serviço.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create publica um aviso e devolve a linha armazenada.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Announcement, error) {
	return s.store.Insert(ctx, input)
}

// List devolve o feed completo, mais recentes primeiro.
func (s *Service) List(ctx context.Context) ([]Announcement, error) {
	return s.store.List(ctx)
}

// Delete remove um aviso em definitivo (hard delete, idempotente).
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}
