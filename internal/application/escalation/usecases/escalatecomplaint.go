package usecases

import (
	"context"

	"jannivaran/internal/application/escalation/dto"
	"jannivaran/internal/domain/audit"
	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/domain/escalation"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
)

type EscalateComplaintCommand struct {
	ComplaintID uint
	Reason      string
	Notes       string
	Viewer      complaint.Viewer
	ActorName   string
}

type EscalateComplaintUseCase struct {
	complaintRepo  complaint.ComplaintRepository
	escalationRepo escalation.EscalationRepository
	auditRepo      audit.AuditRepository
	logger         logger.Interface
}

func NewEscalateComplaintUseCase(
	complaintRepo complaint.ComplaintRepository,
	escalationRepo escalation.EscalationRepository,
	auditRepo audit.AuditRepository,
	logger logger.Interface,
) *EscalateComplaintUseCase {
	return &EscalateComplaintUseCase{
		complaintRepo:  complaintRepo,
		escalationRepo: escalationRepo,
		auditRepo:      auditRepo,
		logger:         logger,
	}
}

func (uc *EscalateComplaintUseCase) Execute(ctx context.Context, cmd EscalateComplaintCommand) (*dto.EscalationDTO, error) {
	uc.logger.Infow("executing escalate complaint use case",
		"complaint_id", cmd.ComplaintID,
		"reason", cmd.Reason,
		"actor_id", cmd.Viewer.UserID,
	)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}
	if !cmd.Viewer.Role.IsStaff() {
		return nil, errors.NewForbiddenError("only officials and admins can escalate a complaint")
	}

	reasonStr := cmd.Reason
	if reasonStr == "" {
		reasonStr = escalation.ReasonManual.String()
	}
	reason, err := escalation.NewReason(reasonStr)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	// Breach escalations are reserved for the sweep.
	if reason == escalation.ReasonSLABreach {
		return nil, errors.NewValidationError("reason must be manual or priority")
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.escalationRepo.GetUnresolvedByComplaintID(ctx, cmd.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to check for unresolved escalation", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("complaint already has an unresolved escalation")
	}

	esc, err := escalation.NewEscalation(
		c.ID(),
		c.TrackingID(),
		reason,
		c.Department(),
		cmd.Viewer.UserID,
		cmd.Notes,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := c.Escalate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// The unique index on unresolved escalations closes the race between the
	// existence check above and this insert.
	if err := uc.escalationRepo.Save(ctx, esc); err != nil {
		if errors.IsConflictError(err) || errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("complaint already has an unresolved escalation")
		}
		uc.logger.Errorw("failed to save escalation", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, err
	}

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update complaint", "error", err, "complaint_id", cmd.ComplaintID)
		return nil, err
	}

	uc.recordAudit(ctx, cmd, esc)

	uc.logger.Infow("complaint escalated",
		"complaint_id", c.ID(),
		"escalation_id", esc.ID(),
		"reason", reason.String(),
		"escalated_to", esc.EscalatedTo(),
	)

	result := dto.FromEntity(esc)
	return &result, nil
}

func (uc *EscalateComplaintUseCase) recordAudit(ctx context.Context, cmd EscalateComplaintCommand, esc *escalation.Escalation) {
	entry, err := audit.NewEntry(
		esc.ComplaintID(),
		audit.ActionEscalated,
		audit.Actor{ID: cmd.Viewer.UserID, Name: cmd.ActorName, Role: cmd.Viewer.Role.String()},
		nil,
		map[string]interface{}{
			"reason":       esc.Reason().String(),
			"escalated_to": esc.EscalatedTo(),
		},
		nil,
	)
	if err != nil {
		uc.logger.Warnw("failed to build audit entry", "error", err, "complaint_id", esc.ComplaintID())
		return
	}
	if err := uc.auditRepo.Save(ctx, entry); err != nil {
		uc.logger.Warnw("failed to write audit entry", "error", err, "complaint_id", esc.ComplaintID())
	}
}
