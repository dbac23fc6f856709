package usecases

import (
	"context"

	"jannivaran/internal/domain/user"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID       uint
	Name         string
	Role         string
	Department   string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUseCase struct {
	userRepo   user.UserRepository
	hasher     PasswordHasher
	jwtService JWTService
	logger     logger.Interface
}

func NewLoginUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			// Same error whether the account exists or not.
			return nil, errors.NewUnauthorizedError("invalid email or password")
		}
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, err
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	tokens, err := uc.jwtService.Generate(u.ID(), u.Role(), u.Department())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to create session")
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role().String())

	return &LoginResult{
		UserID:       u.ID(),
		Name:         u.Name(),
		Role:         u.Role().String(),
		Department:   u.Department(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
