package request

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Store abstrai a persistência de pedidos de documento.
type Store interface {
	Insert(ctx context.Context, input SubmitInput, status Status) (*DocumentRequest, error)
	ListAll(ctx context.Context) ([]DocumentRequest, error)
	ListByEmail(ctx context.Context, email string) ([]DocumentRequest, error)
	GetStatus(ctx context.Context, id uuid.UUID) (Status, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
}

// Service governa o ciclo de vida dos pedidos de documento.
type Service struct {
	store Store
}

// NewService cria uma nova instância do serviço.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Submit cria um pedido sempre em Pending. Não há detecção de
// duplicatas: dois envios idênticos geram duas linhas independentes.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*DocumentRequest, error) {
	return s.store.Insert(ctx, input, StatusPending)
}

// ListAll devolve todos os pedidos para a visão administrativa.
func (s *Service) ListAll(ctx context.Context) ([]DocumentRequest, error) {
	return s.store.ListAll(ctx)
}

// ListForResident devolve os pedidos do morador pelo e-mail exato.
func (s *Service) ListForResident(ctx context.Context, email string) ([]DocumentRequest, error) {
	return s.store.ListByEmail(ctx, email)
}

// SetStatus é o único ponto de mutação do ciclo de vida. Regras:
//   - valor fora do conjunto reconhecido falha com ErrInvalidStatus;
//   - id inexistente é sucesso silencioso, sem escrita;
//   - status igual ao atual é sucesso idempotente, sem escrita;
//   - a única transição legal é Pending -> Completed; o resto falha
//     com ErrInvalidTransition.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, raw string) error {
	target, err := ParseStatus(raw)
	if err != nil {
		return err
	}

	current, err := s.store.GetStatus(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	if current == target {
		return nil
	}

	if !current.CanTransitionTo(target) {
		return ErrInvalidTransition
	}

	return s.store.UpdateStatus(ctx, id, target)
}
