package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jannivaran/internal/shared/authorization"
)

func newTestJWTService() *JWTService {
	return NewJWTService("test-secret", 15, 7)
}

func TestJWTService_GenerateAndVerify(t *testing.T) {
	service := newTestJWTService()

	tests := []struct {
		name       string
		userID     uint
		role       authorization.UserRole
		department string
	}{
		{"citizen without department", 1, authorization.RoleCitizen, ""},
		{"official with department", 42, authorization.RoleOfficial, "Water Supply"},
		{"admin", 7, authorization.RoleAdmin, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := service.Generate(tt.userID, tt.role, tt.department)
			require.NoError(t, err)
			require.NotEmpty(t, pair.AccessToken)
			require.NotEmpty(t, pair.RefreshToken)
			assert.Equal(t, int64(15*60), pair.ExpiresIn)

			claims, err := service.Verify(pair.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.role, claims.Role)
			assert.Equal(t, tt.department, claims.Department)
			assert.Equal(t, TokenTypeAccess, claims.TokenType)
		})
	}
}

func TestJWTService_RefreshTokenType(t *testing.T) {
	service := newTestJWTService()

	pair, err := service.Generate(1, authorization.RoleCitizen, "")
	require.NoError(t, err)

	claims, err := service.Verify(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestJWTService_Refresh(t *testing.T) {
	service := newTestJWTService()

	pair, err := service.Generate(42, authorization.RoleOfficial, "Roads")
	require.NoError(t, err)

	fresh, err := service.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := service.Verify(fresh.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, authorization.RoleOfficial, claims.Role)
	assert.Equal(t, "Roads", claims.Department)
}

func TestJWTService_RefreshRejectsAccessToken(t *testing.T) {
	service := newTestJWTService()

	pair, err := service.Generate(1, authorization.RoleCitizen, "")
	require.NoError(t, err)

	_, err = service.Refresh(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsBadTokens(t *testing.T) {
	service := newTestJWTService()

	pair, err := service.Generate(1, authorization.RoleCitizen, "")
	require.NoError(t, err)

	otherService := NewJWTService("different-secret", 15, 7)

	tests := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"garbage", "not.a.jwt"},
		{"tampered signature", pair.AccessToken + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Verify(tt.token)
			assert.Error(t, err)
		})
	}

	t.Run("wrong secret", func(t *testing.T) {
		_, err := otherService.Verify(pair.AccessToken)
		assert.Error(t, err)
	})
}
