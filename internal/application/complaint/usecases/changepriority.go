package usecases

import (
	"context"
	"time"

	"jannivaran/internal/domain/audit"
	"jannivaran/internal/domain/complaint"
	vo "jannivaran/internal/domain/complaint/valueobjects"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
)

type ChangePriorityCommand struct {
	ComplaintID uint
	NewPriority string
	ActorID     uint
	ActorName   string
	ActorRole   string
}

type ChangePriorityResult struct {
	ComplaintID uint
	OldPriority string
	NewPriority string
	NewDeadline time.Time
}

type ChangePriorityUseCase struct {
	complaintRepo complaint.ComplaintRepository
	auditRepo     audit.AuditRepository
	logger        logger.Interface
}

func NewChangePriorityUseCase(
	complaintRepo complaint.ComplaintRepository,
	auditRepo audit.AuditRepository,
	logger logger.Interface,
) *ChangePriorityUseCase {
	return &ChangePriorityUseCase{
		complaintRepo: complaintRepo,
		auditRepo:     auditRepo,
		logger:        logger,
	}
}

func (uc *ChangePriorityUseCase) Execute(ctx context.Context, cmd ChangePriorityCommand) (*ChangePriorityResult, error) {
	uc.logger.Infow("executing change priority use case",
		"complaint_id", cmd.ComplaintID,
		"new_priority", cmd.NewPriority,
		"actor_id", cmd.ActorID,
	)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	newPriority, err := vo.NewPriority(cmd.NewPriority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to get complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, err
	}

	oldPriority := c.Priority()

	if err := c.ChangePriority(newPriority); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, err
	}

	uc.recordAudit(ctx, cmd, c, oldPriority)

	uc.logger.Infow("complaint priority changed",
		"complaint_id", c.ID(),
		"from", oldPriority.String(),
		"to", c.Priority().String(),
		"new_deadline", c.SLADeadline(),
	)

	return &ChangePriorityResult{
		ComplaintID: c.ID(),
		OldPriority: oldPriority.String(),
		NewPriority: c.Priority().String(),
		NewDeadline: c.SLADeadline(),
	}, nil
}

func (uc *ChangePriorityUseCase) recordAudit(ctx context.Context, cmd ChangePriorityCommand, c *complaint.Complaint, oldPriority vo.Priority) {
	entry, err := audit.NewEntry(
		c.ID(),
		audit.ActionPriorityChanged,
		audit.Actor{ID: cmd.ActorID, Name: cmd.ActorName, Role: cmd.ActorRole},
		map[string]interface{}{"priority": oldPriority.String()},
		map[string]interface{}{
			"priority": c.Priority().String(),
			"deadline": c.SLADeadline(),
		},
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
