package usecases

import (
	"context"
	"time"

	"jannivaran/internal/application/notification"
	"jannivaran/internal/domain/audit"
	"jannivaran/internal/domain/complaint"
	vo "jannivaran/internal/domain/complaint/valueobjects"
	"jannivaran/internal/domain/user"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
	"jannivaran/internal/shared/services/markdown"
)

type ChangeStatusCommand struct {
	ComplaintID    uint
	NewStatus      string
	ResolutionNote string
	ActorID        uint
	ActorName      string
	ActorRole      string
}

type ChangeStatusResult struct {
	ComplaintID uint
	OldStatus   string
	NewStatus   string
	ChangedAt   time.Time
}

type ChangeStatusUseCase struct {
	complaintRepo complaint.ComplaintRepository
	userRepo      user.UserRepository
	auditRepo     audit.AuditRepository
	notifier      notification.Service
	markdown      markdown.MarkdownService
	logger        logger.Interface
}

func NewChangeStatusUseCase(
	complaintRepo complaint.ComplaintRepository,
	userRepo user.UserRepository,
	auditRepo audit.AuditRepository,
	notifier notification.Service,
	markdownSvc markdown.MarkdownService,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		auditRepo:     auditRepo,
		notifier:      notifier,
		markdown:      markdownSvc,
		logger:        logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case",
		"complaint_id", cmd.ComplaintID,
		"new_status", cmd.NewStatus,
		"actor_id", cmd.ActorID,
	)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	newStatus, err := vo.NewComplaintStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to get complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, err
	}

	oldStatus := c.Status()

	if len(cmd.ResolutionNote) > 0 {
		if err := c.SetResolutionNote(cmd.ResolutionNote); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := c.ChangeStatus(newStatus); err != nil {
		uc.logger.Errorw("status transition rejected", "error", err,
			"complaint_id", cmd.ComplaintID,
			"from", oldStatus.String(),
			"to", newStatus.String(),
		)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, err
	}

	uc.recordAudit(ctx, cmd, c, oldStatus)
	uc.notifyCitizen(ctx, cmd, c, oldStatus)

	uc.logger.Infow("complaint status changed",
		"complaint_id", c.ID(),
		"from", oldStatus.String(),
		"to", c.Status().String(),
	)

	return &ChangeStatusResult{
		ComplaintID: c.ID(),
		OldStatus:   oldStatus.String(),
		NewStatus:   c.Status().String(),
		ChangedAt:   c.UpdatedAt(),
	}, nil
}

func (uc *ChangeStatusUseCase) recordAudit(ctx context.Context, cmd ChangeStatusCommand, c *complaint.Complaint, oldStatus vo.ComplaintStatus) {
	entry, err := audit.NewEntry(
		c.ID(),
		audit.ActionStatusChanged,
		audit.Actor{ID: cmd.ActorID, Name: cmd.ActorName, Role: cmd.ActorRole},
		map[string]interface{}{"status": oldStatus.String()},
		map[string]interface{}{"status": c.Status().String()},
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

func (uc *ChangeStatusUseCase) notifyCitizen(ctx context.Context, cmd ChangeStatusCommand, c *complaint.Complaint, oldStatus vo.ComplaintStatus) {
	citizen, err := uc.userRepo.GetByID(ctx, c.CitizenID())
	if err != nil {
		uc.logger.Warnw("failed to load citizen for notification", "error", err, "citizen_id", c.CitizenID())
		return
	}

	noteHTML := ""
	if len(c.ResolutionNote()) > 0 {
		noteHTML, err = uc.markdown.ToHTMLSanitized(c.ResolutionNote())
		if err != nil {
			uc.logger.Warnw("failed to render resolution note", "error", err, "complaint_id", c.ID())
			noteHTML = ""
		}
	}

	event := complaint.NewComplaintStatusChangedEvent(
		c.ID(),
		c.TrackingID(),
		oldStatus.String(),
		c.Status().String(),
		cmd.ActorID,
		time.Now().UTC(),
	)
	if err := uc.notifier.SendStatusChanged(ctx, citizen.Email(), event, noteHTML); err != nil {
		uc.logger.Warnw("failed to send status change email", "error", err, "tracking_id", c.TrackingID())
	}
}
