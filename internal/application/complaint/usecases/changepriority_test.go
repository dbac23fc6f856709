package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jannivaran/internal/domain/audit"
	"jannivaran/internal/domain/complaint"
	vo "jannivaran/internal/domain/complaint/valueobjects"
	"jannivaran/internal/shared/errors"
)

func TestChangePriority_ReanchorsDeadline(t *testing.T) {
	stored := storedComplaint(t, 1, vo.StatusPending, vo.PriorityLow)
	oldDeadline := stored.SLADeadline()

	complaintRepo := &MockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return stored, nil
		},
	}

	var savedEntry *audit.Entry
	auditRepo := &MockAuditRepository{
		SaveFunc: func(ctx context.Context, entry *audit.Entry) error {
			savedEntry = entry
			return nil
		},
	}

	uc := NewChangePriorityUseCase(complaintRepo, auditRepo, testLogger())

	before := time.Now().UTC()
	result, err := uc.Execute(context.Background(), ChangePriorityCommand{
		ComplaintID: 1,
		NewPriority: "critical",
		ActorID:     55,
		ActorName:   "Vikram Joshi",
		ActorRole:   "official",
	})
	require.NoError(t, err)

	assert.Equal(t, "low", result.OldPriority)
	assert.Equal(t, "critical", result.NewPriority)

	// The new deadline is anchored at the change, not at filing.
	assert.True(t, result.NewDeadline.Before(oldDeadline))
	wantDeadline := before.Add(24 * time.Hour)
	assert.WithinDuration(t, wantDeadline, result.NewDeadline, 5*time.Second)

	require.NotNil(t, savedEntry)
	assert.Equal(t, audit.ActionPriorityChanged, savedEntry.Action())
	assert.Equal(t, "low", savedEntry.OldValues()["priority"])
	assert.Equal(t, "critical", savedEntry.NewValues()["priority"])
}

func TestChangePriority_InvalidPriority(t *testing.T) {
	uc := NewChangePriorityUseCase(&MockComplaintRepository{}, &MockAuditRepository{}, testLogger())

	_, err := uc.Execute(context.Background(), ChangePriorityCommand{
		ComplaintID: 1,
		NewPriority: "severe",
		ActorID:     55,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestChangePriority_RejectedOnResolvedComplaint(t *testing.T) {
	stored := storedComplaint(t, 1, vo.StatusResolved, vo.PriorityMedium)

	complaintRepo := &MockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return stored, nil
		},
	}

	uc := NewChangePriorityUseCase(complaintRepo, &MockAuditRepository{}, testLogger())

	_, err := uc.Execute(context.Background(), ChangePriorityCommand{
		ComplaintID: 1,
		NewPriority: "high",
		ActorID:     55,
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
