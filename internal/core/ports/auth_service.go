package ports

import (
	"context"

	"github.com/gasixone/crmpro-backend/internal/core/domain"
)

// RegisterInput carries the fields accepted at sign-up. Plan is optional and
// defaults to domain.DefaultPlan.
type RegisterInput struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Plan    string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// VerifyEmail marks the matching user verified. The returned bool is true
	// when the user was already verified (idempotent success).
	VerifyEmail(ctx context.Context, token string) (bool, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
