package ports

import (
	"context"
	"time"

	"github.com/maiunguwa377/caseflow/internal/core/domain"
)

// CaseInput carries the writable fields of a case plus the acting
// user's id for structured logging.
type CaseInput struct {
	CaseNumber       string
	Parties          string
	RegistrationDate time.Time
	Status           string
	ActorID          int64
}

type CaseService interface {
	List(ctx context.Context) ([]domain.Case, error)
	Create(ctx context.Context, input CaseInput) (*domain.Case, error)
	Update(ctx context.Context, id int64, input CaseInput) error
	Delete(ctx context.Context, id int64, actorID int64) error
}
