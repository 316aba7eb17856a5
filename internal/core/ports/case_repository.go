package ports

import (
	"context"

	"github.com/maiunguwa377/caseflow/internal/core/domain"
)

// CaseRepository executes parameterized queries against the cases table.
type CaseRepository interface {
	List(ctx context.Context) ([]domain.Case, error)
	Create(ctx context.Context, c *domain.Case) (*domain.Case, error)
	Update(ctx context.Context, c *domain.Case) error
	Delete(ctx context.Context, id int64) error
}

// CaseCache is an optional read-through cache in front of CaseRepository.List.
// A miss is not an error; callers fall back to the repository.
type CaseCache interface {
	Get(ctx context.Context) ([]domain.Case, bool, error)
	Set(ctx context.Context, cases []domain.Case) error
	Invalidate(ctx context.Context) error
}
