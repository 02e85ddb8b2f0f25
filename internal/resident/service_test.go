package resident

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type stubStore struct {
	byEmail map[string]*Resident
	counts  int
}

func newStubStore() *stubStore {
	return &stubStore{byEmail: make(map[string]*Resident)}
}

func (s *stubStore) Create(ctx context.Context, params CreateParams) (*Resident, error) {
	if _, ok := s.byEmail[params.Email]; ok {
		return nil, ErrEmailTaken
	}
	res := &Resident{
		ID:           uuid.New(),
		FullName:     params.FullName,
		Email:        params.Email,
		Phone:        params.Phone,
		PasswordHash: params.PasswordHash,
		CreatedAt:    time.Now(),
	}
	s.byEmail[params.Email] = res
	return res, nil
}

func (s *stubStore) FindByEmail(ctx context.Context, email string) (*Resident, error) {
	res, ok := s.byEmail[email]
	if !ok {
		return nil, ErrNotFound
	}
	return res, nil
}

func (s *stubStore) Count(ctx context.Context) (int64, error) {
	s.counts++
	return int64(len(s.byEmail)), nil
}

// client aponta para um endereço fechado: todo acesso ao cache falha
// e o serviço precisa degradar para o banco.
func deadCache() *redis.Client {
	return redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
}

func newTestService(store Store) *Service {
	return NewService(store, deadCache(), time.Second)
}

func TestRegisterThenLogin(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store)
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterInput{
		FullName: "Juan Dela Cruz",
		Email:    "juan@example.com",
		Password: "pw123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.PasswordHash == "pw123" || created.PasswordHash == "" {
		t.Fatalf("password must be stored as a hash")
	}

	logged, err := svc.Login(ctx, "juan@example.com", "pw123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != created.ID {
		t.Fatalf("login returned wrong resident")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store)
	ctx := context.Background()

	input := RegisterInput{FullName: "Juan", Email: "juan@example.com", Password: "pw123"}
	if _, err := svc.Register(ctx, input); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Register(ctx, input); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken got %v", err)
	}
	if len(store.byEmail) != 1 {
		t.Fatalf("duplicate register must not create a second row")
	}
}

func TestLoginFailures(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "nobody@example.com", "pw"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound got %v", err)
	}

	if _, err := svc.Register(ctx, RegisterInput{FullName: "Juan", Email: "juan@example.com", Password: "pw123"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Login(ctx, "juan@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials got %v", err)
	}
}

func TestLoginTrimsPassword(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{FullName: "Juan", Email: "juan@example.com", Password: " pw123 "}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Login(ctx, "juan@example.com", "pw123 "); err != nil {
		t.Fatalf("trimmed comparison must match: %v", err)
	}
}

func TestCountFallsBackWithoutCache(t *testing.T) {
	store := newStubStore()
	svc := newTestService(store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{FullName: "Juan", Email: "juan@example.com", Password: "pw123"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	total, err := svc.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 got %d", total)
	}
	if store.counts != 1 {
		t.Fatalf("store must be consulted when cache is down")
	}
}
