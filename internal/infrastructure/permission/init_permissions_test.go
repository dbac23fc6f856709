package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"jannivaran/internal/shared/logger"
)

func setupEnforcer(t *testing.T) *Enforcer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Each pooled connection to an in-memory sqlite DSN gets its own empty
	// database; keep the pool at one connection so the schema is shared.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	enforcer, err := NewEnforcer(db, "../../../configs/rbac_model.conf", logger.NewLogger())
	require.NoError(t, err)
	require.NoError(t, InitDefaultPolicies(enforcer, logger.NewLogger()))

	return enforcer
}

func TestInitDefaultPolicies_RoleGrants(t *testing.T) {
	enforcer := setupEnforcer(t)

	tests := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"citizen", "complaint", "create", true},
		{"citizen", "complaint", "intervene", true},
		{"citizen", "complaint", "assign", false},
		{"citizen", "sweep", "run", false},
		{"official", "complaint", "update", true},
		{"official", "complaint", "intervene", false},
		{"official", "sweep", "run", false},
		{"admin", "complaint", "delete", true},
		{"admin", "complaint", "intervene", true},
		{"admin", "sweep", "run", true},
	}

	for _, tt := range tests {
		t.Run(tt.role+" "+tt.resource+" "+tt.action, func(t *testing.T) {
			allowed, err := enforcer.Enforce(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestInitDefaultPolicies_IsIdempotent(t *testing.T) {
	enforcer := setupEnforcer(t)
	require.NoError(t, InitDefaultPolicies(enforcer, logger.NewLogger()))

	allowed, err := enforcer.Enforce("admin", "complaint", "intervene")
	require.NoError(t, err)
	assert.True(t, allowed)
}
