package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jannivaran/internal/domain/complaint"
	vo "jannivaran/internal/domain/complaint/valueobjects"
	"jannivaran/internal/shared/authorization"
	"jannivaran/internal/shared/errors"
)

func ownerViewer() complaint.Viewer {
	return complaint.Viewer{UserID: 10, Role: authorization.RoleCitizen}
}

func TestIntervene_CallAuthorityReturnsContact(t *testing.T) {
	stored := storedComplaint(t, 1, vo.StatusPending, vo.PriorityMedium)

	complaintRepo := &MockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return stored, nil
		},
	}

	uc := NewInterveneUseCase(complaintRepo, &MockAuditRepository{}, testLogger())

	result, err := uc.Execute(context.Background(), InterveneCommand{
		ComplaintID: 1,
		Mode:        InterventionCallAuthority,
		Viewer:      ownerViewer(),
	})
	require.NoError(t, err)

	require.NotNil(t, result.Contact)
	assert.Equal(t, "Sanitation Department", result.Contact.Department)
	assert.NotEmpty(t, result.Contact.Phone)
	assert.NotEmpty(t, result.Contact.Email)
}

func TestIntervene_RaiseTicketBumpsPriority(t *testing.T) {
	stored := storedComplaint(t, 1, vo.StatusInProgress, vo.PriorityMedium)

	complaintRepo := &MockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return stored, nil
		},
	}

	uc := NewInterveneUseCase(complaintRepo, &MockAuditRepository{}, testLogger())

	result, err := uc.Execute(context.Background(), InterveneCommand{
		ComplaintID: 1,
		Mode:        InterventionRaiseTicket,
		Viewer:      ownerViewer(),
		ActorName:   "Asha Patil",
	})
	require.NoError(t, err)

	assert.Equal(t, "high", result.NewPriority)
	require.NotNil(t, result.NewDeadline)
	assert.Equal(t, vo.PriorityHigh, stored.Priority())
	assert.NotNil(t, stored.EscalatedAt())
	// Raising a ticket does not move the complaint into the escalated status.
	assert.Equal(t, vo.StatusInProgress, stored.Status())
}

func TestIntervene_RaiseTicketKeepsCriticalPriority(t *testing.T) {
	stored := storedComplaint(t, 1, vo.StatusPending, vo.PriorityCritical)

	complaintRepo := &MockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return stored, nil
		},
	}

	uc := NewInterveneUseCase(complaintRepo, &MockAuditRepository{}, testLogger())

	result, err := uc.Execute(context.Background(), InterveneCommand{
		ComplaintID: 1,
		Mode:        InterventionRaiseTicket,
		Viewer:      ownerViewer(),
	})
	require.NoError(t, err)

	assert.Equal(t, "critical", result.NewPriority)
}

func TestIntervene_ForbiddenForOtherCitizen(t *testing.T) {
	stored := storedComplaint(t, 1, vo.StatusPending, vo.PriorityMedium)

	complaintRepo := &MockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return stored, nil
		},
	}

	uc := NewInterveneUseCase(complaintRepo, &MockAuditRepository{}, testLogger())

	_, err := uc.Execute(context.Background(), InterveneCommand{
		ComplaintID: 1,
		Mode:        InterventionCallAuthority,
		Viewer:      complaint.Viewer{UserID: 99, Role: authorization.RoleCitizen},
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestIntervene_UnknownMode(t *testing.T) {
	stored := storedComplaint(t, 1, vo.StatusPending, vo.PriorityMedium)

	complaintRepo := &MockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return stored, nil
		},
	}

	uc := NewInterveneUseCase(complaintRepo, &MockAuditRepository{}, testLogger())

	_, err := uc.Execute(context.Background(), InterveneCommand{
		ComplaintID: 1,
		Mode:        "shout-loudly",
		Viewer:      ownerViewer(),
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
