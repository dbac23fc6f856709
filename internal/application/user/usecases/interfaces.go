package usecases

import (
	"context"

	"jannivaran/internal/shared/authorization"
)

// PasswordHasher hides the hashing scheme from the application layer.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService issues and refreshes signed token pairs.
type JWTService interface {
	Generate(userID uint, role authorization.UserRole, department string) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
}

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*TokenPair, error)
}
