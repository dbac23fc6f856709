package usecases

import (
	"context"

	"jannivaran/internal/application/notification"
	"jannivaran/internal/domain/user"
	"jannivaran/internal/shared/authorization"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
)

const minPasswordLength = 8

type RegisterCommand struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
	// ActorRole is the role of whoever performs the registration. Public
	// signup passes an empty value and always yields a citizen account.
	ActorRole authorization.UserRole
}

type RegisterResult struct {
	UserID     uint
	Name       string
	Email      string
	Role       string
	Department string
}

type RegisterUseCase struct {
	userRepo user.UserRepository
	hasher   PasswordHasher
	notifier notification.Service
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.UserRepository,
	hasher PasswordHasher,
	notifier notification.Service,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	uc.logger.Infow("executing register use case", "email", cmd.Email, "role", cmd.Role)

	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	role := authorization.ParseUserRole(cmd.Role)
	if role != authorization.RoleCitizen && !cmd.ActorRole.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can create official or admin accounts")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewConflictError("an account with this email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create account")
	}

	u, err := user.NewUser(cmd.Name, cmd.Email, hash, role, cmd.Department)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		if errors.IsDuplicateError(err) || errors.IsConflictError(err) {
			return nil, errors.NewConflictError("an account with this email already exists")
		}
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	if err := uc.notifier.SendWelcome(ctx, u.Email(), u.Name()); err != nil {
		uc.logger.Warnw("failed to send welcome email", "error", err, "user_id", u.ID())
	}

	uc.logger.Infow("user registered", "user_id", u.ID(), "role", u.Role().String())

	return &RegisterResult{
		UserID:     u.ID(),
		Name:       u.Name(),
		Email:      u.Email(),
		Role:       u.Role().String(),
		Department: u.Department(),
	}, nil
}
