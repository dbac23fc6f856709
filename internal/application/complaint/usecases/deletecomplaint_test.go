package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jannivaran/internal/domain/audit"
	"jannivaran/internal/domain/complaint"
	vo "jannivaran/internal/domain/complaint/valueobjects"
	"jannivaran/internal/shared/authorization"
	"jannivaran/internal/shared/errors"
)

func TestDeleteComplaint_AdminCanDelete(t *testing.T) {
	stored := storedComplaint(t, 1, vo.StatusClosed, vo.PriorityMedium)

	var deletedID uint
	complaintRepo := &MockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return stored, nil
		},
		DeleteFunc: func(ctx context.Context, complaintID uint) error {
			deletedID = complaintID
			return nil
		},
	}

	var savedEntry *audit.Entry
	auditRepo := &MockAuditRepository{
		SaveFunc: func(ctx context.Context, entry *audit.Entry) error {
			savedEntry = entry
			return nil
		},
	}

	uc := NewDeleteComplaintUseCase(complaintRepo, auditRepo, testLogger())

	err := uc.Execute(context.Background(), DeleteComplaintCommand{
		ComplaintID: 1,
		Viewer:      complaint.Viewer{UserID: 3, Role: authorization.RoleAdmin},
		ActorName:   "Admin",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), deletedID)
	require.NotNil(t, savedEntry)
	assert.Equal(t, audit.ActionDeleted, savedEntry.Action())
	assert.Equal(t, "JAN-123456", savedEntry.OldValues()["tracking_id"])
}

func TestDeleteComplaint_OwningCitizenCanDelete(t *testing.T) {
	stored := storedComplaint(t, 1, vo.StatusPending, vo.PriorityMedium)

	complaintRepo := &MockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return stored, nil
		},
	}

	uc := NewDeleteComplaintUseCase(complaintRepo, &MockAuditRepository{}, testLogger())

	err := uc.Execute(context.Background(), DeleteComplaintCommand{
		ComplaintID: 1,
		Viewer:      complaint.Viewer{UserID: 10, Role: authorization.RoleCitizen},
	})
	assert.NoError(t, err)
}

func TestDeleteComplaint_ForbiddenForOfficial(t *testing.T) {
	stored := storedComplaint(t, 1, vo.StatusPending, vo.PriorityMedium)

	var deleted bool
	complaintRepo := &MockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return stored, nil
		},
		DeleteFunc: func(ctx context.Context, complaintID uint) error {
			deleted = true
			return nil
		},
	}

	uc := NewDeleteComplaintUseCase(complaintRepo, &MockAuditRepository{}, testLogger())

	err := uc.Execute(context.Background(), DeleteComplaintCommand{
		ComplaintID: 1,
		Viewer:      complaint.Viewer{UserID: 55, Role: authorization.RoleOfficial, Department: "Sanitation Department"},
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
	assert.False(t, deleted)
}

func TestDeleteComplaint_NotFound(t *testing.T) {
	complaintRepo := &MockComplaintRepository{
		GetByIDFunc: func(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
			return nil, errors.NewNotFoundError("complaint not found")
		},
	}

	uc := NewDeleteComplaintUseCase(complaintRepo, &MockAuditRepository{}, testLogger())

	err := uc.Execute(context.Background(), DeleteComplaintCommand{
		ComplaintID: 404,
		Viewer:      complaint.Viewer{UserID: 3, Role: authorization.RoleAdmin},
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
