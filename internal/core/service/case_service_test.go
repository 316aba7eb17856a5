package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/maiunguwa377/caseflow/internal/core/domain"
	"github.com/maiunguwa377/caseflow/internal/core/ports"
)

type stubCaseRepo struct {
	cases     []domain.Case
	nextID    int64
	listCalls int
	listErr   error
}

func (r *stubCaseRepo) List(_ context.Context) ([]domain.Case, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Case, len(r.cases))
	copy(out, r.cases)
	return out, nil
}

func (r *stubCaseRepo) Create(_ context.Context, c *domain.Case) (*domain.Case, error) {
	r.nextID++
	created := *c
	created.ID = r.nextID
	r.cases = append(r.cases, created)
	return &created, nil
}

func (r *stubCaseRepo) Update(_ context.Context, c *domain.Case) error {
	for i := range r.cases {
		if r.cases[i].ID == c.ID {
			r.cases[i] = *c
			return nil
		}
	}
	return domain.ErrCaseNotFound
}

func (r *stubCaseRepo) Delete(_ context.Context, id int64) error {
	for i := range r.cases {
		if r.cases[i].ID == id {
			r.cases = append(r.cases[:i], r.cases[i+1:]...)
			return nil
		}
	}
	return domain.ErrCaseNotFound
}

type stubCaseCache struct {
	entry       []domain.Case
	populated   bool
	getErr      error
	invalidated int
}

func (c *stubCaseCache) Get(_ context.Context) ([]domain.Case, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	if !c.populated {
		return nil, false, nil
	}
	return c.entry, true, nil
}

func (c *stubCaseCache) Set(_ context.Context, cases []domain.Case) error {
	c.entry = cases
	c.populated = true
	return nil
}

func (c *stubCaseCache) Invalidate(_ context.Context) error {
	c.entry = nil
	c.populated = false
	c.invalidated++
	return nil
}

func testCaseInput() ports.CaseInput {
	return ports.CaseInput{
		CaseNumber:       "CV-2026-001",
		Parties:          "State vs. Doe",
		RegistrationDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Status:           "Open",
		ActorID:          1,
	}
}

func TestCaseService_List_PopulatesCache(t *testing.T) {
	repo := &stubCaseRepo{cases: []domain.Case{{ID: 1, CaseNumber: "CV-1"}}}
	cache := &stubCaseCache{}
	svc := NewCaseService(repo, cache, zerolog.Nop())

	cases, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(cases) != 1 || cases[0].CaseNumber != "CV-1" {
		t.Fatalf("unexpected cases: %+v", cases)
	}
	if !cache.populated {
		t.Fatalf("expected cache to be populated after miss")
	}

	// Second call must be served from the cache.
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repository call, got %d", repo.listCalls)
	}
}

func TestCaseService_List_CacheFailureFallsBack(t *testing.T) {
	repo := &stubCaseRepo{cases: []domain.Case{{ID: 1}}}
	cache := &stubCaseCache{getErr: errors.New("redis down")}
	svc := NewCaseService(repo, cache, zerolog.Nop())

	cases, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(cases) != 1 {
		t.Fatalf("expected fallback to repository, got %+v", cases)
	}
}

func TestCaseService_List_NilCache(t *testing.T) {
	repo := &stubCaseRepo{cases: []domain.Case{{ID: 1}}}
	svc := NewCaseService(repo, nil, zerolog.Nop())

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
}

func TestCaseService_List_RepositoryError(t *testing.T) {
	repo := &stubCaseRepo{listErr: errors.New("connection refused")}
	svc := NewCaseService(repo, &stubCaseCache{}, zerolog.Nop())

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatalf("expected repository error to surface")
	}
}

func TestCaseService_Create_InvalidatesCache(t *testing.T) {
	repo := &stubCaseRepo{}
	cache := &stubCaseCache{populated: true}
	svc := NewCaseService(repo, cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), testCaseInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidation, got %d", cache.invalidated)
	}
}

func TestCaseService_Update_NotFound(t *testing.T) {
	repo := &stubCaseRepo{}
	svc := NewCaseService(repo, &stubCaseCache{}, zerolog.Nop())

	if err := svc.Update(context.Background(), 99, testCaseInput()); !errors.Is(err, domain.ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
}

func TestCaseService_Delete_InvalidatesCache(t *testing.T) {
	repo := &stubCaseRepo{}
	cache := &stubCaseCache{}
	svc := NewCaseService(repo, cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), testCaseInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID, 1); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if cache.invalidated != 2 {
		t.Fatalf("expected invalidation on create and delete, got %d", cache.invalidated)
	}

	if err := svc.Delete(context.Background(), created.ID, 1); !errors.Is(err, domain.ErrCaseNotFound) {
		t.Fatalf("expected ErrCaseNotFound, got %v", err)
	}
}
