package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jannivaran/internal/domain/user"
	"jannivaran/internal/shared/authorization"
	"jannivaran/internal/shared/errors"
)

func storedUser(t *testing.T) *user.User {
	t.Helper()

	now := time.Now().UTC()
	u, err := user.ReconstructUser(
		7,
		"Asha Patil",
		"asha@example.com",
		"hashed:sup3rsecret",
		authorization.RoleCitizen,
		"",
		now,
		now,
	)
	require.NoError(t, err)
	return u
}

func TestLogin_Success(t *testing.T) {
	userRepo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return storedUser(t), nil
		},
	}
	hasher := &MockPasswordHasher{
		VerifyFunc: func(password, hash string) error {
			if hash != "hashed:"+password {
				return errors.NewUnauthorizedError("password verification failed")
			}
			return nil
		},
	}

	uc := NewLoginUseCase(userRepo, hasher, &MockJWTService{}, testLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "asha@example.com",
		Password: "sup3rsecret",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), result.UserID)
	assert.Equal(t, "citizen", result.Role)
	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)
	assert.Equal(t, int64(900), result.ExpiresIn)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return storedUser(t), nil
		},
	}
	hasher := &MockPasswordHasher{
		VerifyFunc: func(password, hash string) error {
			return errors.NewUnauthorizedError("password verification failed")
		},
	}

	uc := NewLoginUseCase(userRepo, hasher, &MockJWTService{}, testLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}

func TestLogin_UnknownEmailGetsSameError(t *testing.T) {
	userRepo := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return nil, errors.NewNotFoundError("user not found")
		},
	}

	uc := NewLoginUseCase(userRepo, &MockPasswordHasher{}, &MockJWTService{}, testLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
	assert.Equal(t, "invalid email or password", appErr.Message)
}

func TestLogin_MissingFields(t *testing.T) {
	uc := NewLoginUseCase(&MockUserRepository{}, &MockPasswordHasher{}, &MockJWTService{}, testLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{Email: "asha@example.com"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestRefreshToken_Success(t *testing.T) {
	uc := NewRefreshTokenUseCase(&MockJWTService{}, testLogger())

	tokens, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "refresh"})
	require.NoError(t, err)
	assert.Equal(t, "access2", tokens.AccessToken)
}

func TestRefreshToken_Rejected(t *testing.T) {
	jwtService := &MockJWTService{
		RefreshFunc: func(refreshToken string) (*TokenPair, error) {
			return nil, errors.NewUnauthorizedError("token expired")
		},
	}

	uc := NewRefreshTokenUseCase(jwtService, testLogger())

	_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "stale"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
}
