package usecases

import (
	"context"
	"time"

	"jannivaran/internal/domain/audit"
	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/domain/user"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
)

type AssignComplaintCommand struct {
	ComplaintID uint
	OfficialID  uint
	ActorID     uint
	ActorName   string
	ActorRole   string
}

type AssignComplaintResult struct {
	ComplaintID uint
	OfficialID  uint
	Department  string
	Status      string
	AssignedAt  time.Time
}

type AssignComplaintUseCase struct {
	complaintRepo complaint.ComplaintRepository
	userRepo      user.UserRepository
	auditRepo     audit.AuditRepository
	logger        logger.Interface
}

func NewAssignComplaintUseCase(
	complaintRepo complaint.ComplaintRepository,
	userRepo user.UserRepository,
	auditRepo audit.AuditRepository,
	logger logger.Interface,
) *AssignComplaintUseCase {
	return &AssignComplaintUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		auditRepo:     auditRepo,
		logger:        logger,
	}
}

func (uc *AssignComplaintUseCase) Execute(ctx context.Context, cmd AssignComplaintCommand) (*AssignComplaintResult, error) {
	uc.logger.Infow("executing assign complaint use case",
		"complaint_id", cmd.ComplaintID,
		"official_id", cmd.OfficialID,
		"actor_id", cmd.ActorID,
	)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}
	if cmd.OfficialID == 0 {
		return nil, errors.NewValidationError("official ID is required")
	}

	official, err := uc.userRepo.GetByID(ctx, cmd.OfficialID)
	if err != nil {
		uc.logger.Errorw("failed to load official", "error", err, "official_id", cmd.OfficialID)
		return nil, err
	}
	if !official.Role().IsStaff() {
		return nil, errors.NewValidationError("assignee must be an official or admin")
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to get complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, err
	}

	oldAssignee := c.AssigneeID()
	oldStatus := c.Status()

	if err := c.AssignTo(cmd.OfficialID, official.Department()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, err
	}

	uc.recordAudit(ctx, cmd, c, oldAssignee, oldStatus.String())

	uc.logger.Infow("complaint assigned",
		"complaint_id", c.ID(),
		"official_id", cmd.OfficialID,
		"department", c.Department(),
	)

	return &AssignComplaintResult{
		ComplaintID: c.ID(),
		OfficialID:  cmd.OfficialID,
		Department:  c.Department(),
		Status:      c.Status().String(),
		AssignedAt:  *c.AssignedAt(),
	}, nil
}

func (uc *AssignComplaintUseCase) recordAudit(ctx context.Context, cmd AssignComplaintCommand, c *complaint.Complaint, oldAssignee *uint, oldStatus string) {
	oldValues := map[string]interface{}{"status": oldStatus}
	if oldAssignee != nil {
		oldValues["assignee_id"] = *oldAssignee
	}

	entry, err := audit.NewEntry(
		c.ID(),
		audit.ActionAssigned,
		audit.Actor{ID: cmd.ActorID, Name: cmd.ActorName, Role: cmd.ActorRole},
		oldValues,
		map[string]interface{}{
			"assignee_id": cmd.OfficialID,
			"department":  c.Department(),
			"status":      c.Status().String(),
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
