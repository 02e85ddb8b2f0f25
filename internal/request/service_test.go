package request

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type stubStore struct {
	byID    map[uuid.UUID]*DocumentRequest
	order   []uuid.UUID
	clock   time.Time
	updates int
}

func newStubStore() *stubStore {
	return &stubStore{
		byID:  make(map[uuid.UUID]*DocumentRequest),
		clock: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (s *stubStore) Insert(ctx context.Context, input SubmitInput, status Status) (*DocumentRequest, error) {
	s.clock = s.clock.Add(time.Second)
	req := &DocumentRequest{
		ID:            uuid.New(),
		ResidentName:  input.ResidentName,
		ResidentEmail: input.ResidentEmail,
		DocumentType:  input.DocumentType,
		Purpose:       input.Purpose,
		Status:        status,
		CreatedAt:     s.clock,
	}
	s.byID[req.ID] = req
	s.order = append(s.order, req.ID)
	return req, nil
}

func (s *stubStore) ListAll(ctx context.Context) ([]DocumentRequest, error) {
	out := make([]DocumentRequest, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, *s.byID[s.order[i]])
	}
	return out, nil
}

func (s *stubStore) ListByEmail(ctx context.Context, email string) ([]DocumentRequest, error) {
	all, _ := s.ListAll(ctx)
	var out []DocumentRequest
	for _, req := range all {
		if req.ResidentEmail == email {
			out = append(out, req)
		}
	}
	return out, nil
}

func (s *stubStore) GetStatus(ctx context.Context, id uuid.UUID) (Status, error) {
	req, ok := s.byID[id]
	if !ok {
		return "", ErrNotFound
	}
	return req.Status, nil
}

func (s *stubStore) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	req, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	req.Status = status
	s.updates++
	return nil
}

func TestSubmitStartsPending(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)
	ctx := context.Background()

	created, err := svc.Submit(ctx, SubmitInput{
		ResidentName:  "Juan Dela Cruz",
		ResidentEmail: "juan@example.com",
		DocumentType:  "Barangay Clearance",
		Purpose:       "Job Application",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.Status != StatusPending {
		t.Fatalf("expected Pending got %s", created.Status)
	}

	all, _ := svc.ListAll(ctx)
	if len(all) != 1 || all[0].ID != created.ID {
		t.Fatalf("expected request in ListAll")
	}

	mine, _ := svc.ListForResident(ctx, "juan@example.com")
	if len(mine) != 1 || mine[0].ID != created.ID {
		t.Fatalf("expected request in ListForResident")
	}

	other, _ := svc.ListForResident(ctx, "JUAN@example.com")
	if len(other) != 0 {
		t.Fatalf("email match must be exact, got %d rows", len(other))
	}
}

func TestSubmitAllowsDuplicates(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)
	ctx := context.Background()

	input := SubmitInput{ResidentEmail: "juan@example.com", DocumentType: "Barangay Clearance"}
	first, _ := svc.Submit(ctx, input)
	second, _ := svc.Submit(ctx, input)
	if first.ID == second.ID {
		t.Fatalf("duplicate submissions must create independent rows")
	}

	all, _ := svc.ListAll(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 rows got %d", len(all))
	}
}

func TestListOrdering(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)
	ctx := context.Background()

	first, _ := svc.Submit(ctx, SubmitInput{DocumentType: "Clearance"})
	second, _ := svc.Submit(ctx, SubmitInput{DocumentType: "Indigency"})

	all, _ := svc.ListAll(ctx)
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatalf("expected newest first ordering")
	}
	if !all[0].CreatedAt.After(all[1].CreatedAt) {
		t.Fatalf("timestamps must decrease down the list")
	}
}

func TestSetStatusCompletesPending(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)
	ctx := context.Background()

	created, _ := svc.Submit(ctx, SubmitInput{ResidentEmail: "juan@example.com"})

	if err := svc.SetStatus(ctx, created.ID, "Completed"); err != nil {
		t.Fatalf("set status: %v", err)
	}

	all, _ := svc.ListAll(ctx)
	if all[0].Status != StatusCompleted {
		t.Fatalf("expected Completed got %s", all[0].Status)
	}

	// repetir a conclusão é sucesso idempotente, sem nova escrita
	if err := svc.SetStatus(ctx, created.ID, "Completed"); err != nil {
		t.Fatalf("idempotent completion must succeed: %v", err)
	}
	if store.updates != 1 {
		t.Fatalf("expected exactly 1 write got %d", store.updates)
	}
}

func TestSetStatusRejectsIllegalTransition(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)
	ctx := context.Background()

	created, _ := svc.Submit(ctx, SubmitInput{})
	if err := svc.SetStatus(ctx, created.ID, "Completed"); err != nil {
		t.Fatalf("set status: %v", err)
	}

	err := svc.SetStatus(ctx, created.ID, "Pending")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition got %v", err)
	}
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)
	ctx := context.Background()

	created, _ := svc.Submit(ctx, SubmitInput{})

	for _, raw := range []string{"Rejected", "completed", "", "  "} {
		if err := svc.SetStatus(ctx, created.ID, raw); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("status %q: expected ErrInvalidStatus got %v", raw, err)
		}
	}
	if store.updates != 0 {
		t.Fatalf("invalid values must not write")
	}
}

func TestSetStatusMissingIDIsSilentNoOp(t *testing.T) {
	store := newStubStore()
	svc := NewService(store)

	if err := svc.SetStatus(context.Background(), uuid.New(), "Completed"); err != nil {
		t.Fatalf("missing id must succeed silently, got %v", err)
	}
	if store.updates != 0 {
		t.Fatalf("missing id must not write")
	}
}
