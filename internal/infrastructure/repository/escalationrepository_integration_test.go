package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jannivaran/internal/domain/escalation"
)

func createTestEscalation(t *testing.T, complaintID uint, trackingID string, reason escalation.Reason, escalatedBy uint) *escalation.Escalation {
	esc, err := escalation.NewEscalation(complaintID, trackingID, reason, "Public Works", escalatedBy, "needs attention")
	require.NoError(t, err)
	return esc
}

func TestEscalationRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEscalationRepository(db)
	ctx := context.Background()

	t.Run("save new escalation successfully", func(t *testing.T) {
		esc := createTestEscalation(t, 1, "JAN-100001", escalation.ReasonManual, 5)

		err := repo.Save(ctx, esc)
		assert.NoError(t, err)
		assert.NotZero(t, esc.ID())
	})

	t.Run("second unresolved escalation for same complaint should fail", func(t *testing.T) {
		esc1 := createTestEscalation(t, 2, "JAN-100002", escalation.ReasonSLABreach, escalation.SystemActorID)
		require.NoError(t, repo.Save(ctx, esc1))

		esc2 := createTestEscalation(t, 2, "JAN-100002", escalation.ReasonManual, 5)
		err := repo.Save(ctx, esc2)
		assert.Error(t, err)
	})

	t.Run("new escalation allowed after previous one is resolved", func(t *testing.T) {
		esc1 := createTestEscalation(t, 3, "JAN-100003", escalation.ReasonSLABreach, escalation.SystemActorID)
		require.NoError(t, repo.Save(ctx, esc1))

		require.NoError(t, esc1.Resolve("handled"))
		require.NoError(t, repo.Update(ctx, esc1))

		esc2 := createTestEscalation(t, 3, "JAN-100003", escalation.ReasonManual, 5)
		err := repo.Save(ctx, esc2)
		assert.NoError(t, err)
	})
}

func TestEscalationRepository_GetUnresolvedByComplaintID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEscalationRepository(db)
	ctx := context.Background()

	t.Run("returns the unresolved escalation", func(t *testing.T) {
		esc := createTestEscalation(t, 10, "JAN-200001", escalation.ReasonManual, 5)
		require.NoError(t, repo.Save(ctx, esc))

		found, err := repo.GetUnresolvedByComplaintID(ctx, 10)
		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, esc.ID(), found.ID())
		assert.False(t, found.IsResolved())
	})

	t.Run("returns nil when all escalations are resolved", func(t *testing.T) {
		esc := createTestEscalation(t, 11, "JAN-200002", escalation.ReasonManual, 5)
		require.NoError(t, repo.Save(ctx, esc))
		require.NoError(t, esc.Resolve("done"))
		require.NoError(t, repo.Update(ctx, esc))

		found, err := repo.GetUnresolvedByComplaintID(ctx, 11)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("returns nil for complaint with no escalations", func(t *testing.T) {
		found, err := repo.GetUnresolvedByComplaintID(ctx, 9999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestEscalationRepository_GetByComplaintID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEscalationRepository(db)
	ctx := context.Background()

	esc1 := createTestEscalation(t, 20, "JAN-300001", escalation.ReasonSLABreach, escalation.SystemActorID)
	require.NoError(t, repo.Save(ctx, esc1))
	require.NoError(t, esc1.Resolve("first round handled"))
	require.NoError(t, repo.Update(ctx, esc1))

	esc2 := createTestEscalation(t, 20, "JAN-300001", escalation.ReasonManual, 5)
	require.NoError(t, repo.Save(ctx, esc2))

	history, err := repo.GetByComplaintID(ctx, 20)
	assert.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestEscalationRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEscalationRepository(db)
	ctx := context.Background()

	t.Run("resolving clears the active marker", func(t *testing.T) {
		esc := createTestEscalation(t, 30, "JAN-400001", escalation.ReasonPriority, 5)
		require.NoError(t, repo.Save(ctx, esc))

		require.NoError(t, esc.Resolve("priority lowered"))
		err := repo.Update(ctx, esc)
		assert.NoError(t, err)

		found, err := repo.GetByID(ctx, esc.ID())
		assert.NoError(t, err)
		assert.True(t, found.IsResolved())
		assert.NotNil(t, found.ResolvedAt())
	})

	t.Run("update non-existent escalation should fail", func(t *testing.T) {
		esc := createTestEscalation(t, 31, "JAN-400002", escalation.ReasonManual, 5)
		require.NoError(t, esc.SetID(99999))

		err := repo.Update(ctx, esc)
		assert.Error(t, err)
	})
}

func TestEscalationRepository_ListUnresolved(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEscalationRepository(db)
	ctx := context.Background()

	for i := uint(1); i <= 3; i++ {
		esc := createTestEscalation(t, 40+i, fmt.Sprintf("JAN-50000%d", i), escalation.ReasonSLABreach, escalation.SystemActorID)
		require.NoError(t, repo.Save(ctx, esc))
	}

	resolved := createTestEscalation(t, 50, "JAN-500009", escalation.ReasonManual, 5)
	require.NoError(t, repo.Save(ctx, resolved))
	require.NoError(t, resolved.Resolve("done"))
	require.NoError(t, repo.Update(ctx, resolved))

	t.Run("lists only unresolved escalations", func(t *testing.T) {
		escalations, total, err := repo.ListUnresolved(ctx, 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, escalations, 3)
	})

	t.Run("pagination", func(t *testing.T) {
		escalations, total, err := repo.ListUnresolved(ctx, 2, 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, escalations, 1)
	})
}
