package ports

import (
	"context"

	"github.com/maiunguwa377/caseflow/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password, role string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
