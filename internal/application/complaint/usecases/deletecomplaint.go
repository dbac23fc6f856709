package usecases

import (
	"context"

	"jannivaran/internal/domain/audit"
	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
)

type DeleteComplaintCommand struct {
	ComplaintID uint
	Viewer      complaint.Viewer
	ActorName   string
}

type DeleteComplaintUseCase struct {
	complaintRepo complaint.ComplaintRepository
	auditRepo     audit.AuditRepository
	logger        logger.Interface
}

func NewDeleteComplaintUseCase(
	complaintRepo complaint.ComplaintRepository,
	auditRepo audit.AuditRepository,
	logger logger.Interface,
) *DeleteComplaintUseCase {
	return &DeleteComplaintUseCase{
		complaintRepo: complaintRepo,
		auditRepo:     auditRepo,
		logger:        logger,
	}
}

// Execute removes the complaint permanently. Only an admin or the owning
// citizen may delete; there is no tombstone and no recovery.
func (uc *DeleteComplaintUseCase) Execute(ctx context.Context, cmd DeleteComplaintCommand) error {
	uc.logger.Infow("executing delete complaint use case",
		"complaint_id", cmd.ComplaintID,
		"actor_id", cmd.Viewer.UserID,
	)

	if cmd.ComplaintID == 0 {
		return errors.NewValidationError("complaint ID is required")
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		return err
	}

	if !cmd.Viewer.Role.IsAdmin() && c.CitizenID() != cmd.Viewer.UserID {
		return errors.NewForbiddenError("only an admin or the filing citizen can delete a complaint")
	}

	if err := uc.complaintRepo.Delete(ctx, cmd.ComplaintID); err != nil {
		uc.logger.Errorw("failed to delete complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return err
	}

	uc.recordAudit(ctx, cmd, c)

	uc.logger.Infow("complaint deleted", "complaint_id", cmd.ComplaintID, "tracking_id", c.TrackingID())
	return nil
}

func (uc *DeleteComplaintUseCase) recordAudit(ctx context.Context, cmd DeleteComplaintCommand, c *complaint.Complaint) {
	entry, err := audit.NewEntry(
		c.ID(),
		audit.ActionDeleted,
		audit.Actor{ID: cmd.Viewer.UserID, Name: cmd.ActorName, Role: cmd.Viewer.Role.String()},
		map[string]interface{}{
			"tracking_id": c.TrackingID(),
			"status":      c.Status().String(),
		},
		nil,
		nil,
	)
	if err != nil {
		uc.logger.Warnw("failed to build audit entry", "error", err, "complaint_id", c.ID())
		return
	}
	if err := uc.auditRepo.Save(ctx, entry); err != nil {
		uc.logger.Warnw("failed to write audit entry", "error", err, "complaint_id", c.ID())
	}
}
