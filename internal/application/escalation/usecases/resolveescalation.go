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

type ResolveEscalationCommand struct {
	EscalationID uint
	Notes        string
	Viewer       complaint.Viewer
	ActorName    string
}

type ResolveEscalationUseCase struct {
	escalationRepo escalation.EscalationRepository
	auditRepo      audit.AuditRepository
	logger         logger.Interface
}

func NewResolveEscalationUseCase(
	escalationRepo escalation.EscalationRepository,
	auditRepo audit.AuditRepository,
	logger logger.Interface,
) *ResolveEscalationUseCase {
	return &ResolveEscalationUseCase{
		escalationRepo: escalationRepo,
		auditRepo:      auditRepo,
		logger:         logger,
	}
}

// Execute marks the escalation handled. The complaint keeps its own status;
// resolving an escalation never moves the complaint out of escalated.
func (uc *ResolveEscalationUseCase) Execute(ctx context.Context, cmd ResolveEscalationCommand) (*dto.EscalationDTO, error) {
	uc.logger.Infow("executing resolve escalation use case",
		"escalation_id", cmd.EscalationID,
		"actor_id", cmd.Viewer.UserID,
	)

	if cmd.EscalationID == 0 {
		return nil, errors.NewValidationError("escalation ID is required")
	}
	if !cmd.Viewer.Role.IsStaff() {
		return nil, errors.NewForbiddenError("only officials and admins can resolve an escalation")
	}

	esc, err := uc.escalationRepo.GetByID(ctx, cmd.EscalationID)
	if err != nil {
		return nil, err
	}

	if err := esc.Resolve(cmd.Notes); err != nil {
		return nil, errors.NewConflictError(err.Error())
	}

	if err := uc.escalationRepo.Update(ctx, esc); err != nil {
		uc.logger.Errorw("failed to update escalation", "error", err, "escalation_id", cmd.EscalationID)
		return nil, err
	}

	uc.recordAudit(ctx, cmd, esc)

	uc.logger.Infow("escalation resolved",
		"escalation_id", esc.ID(),
		"complaint_id", esc.ComplaintID(),
	)

	result := dto.FromEntity(esc)
	return &result, nil
}

func (uc *ResolveEscalationUseCase) recordAudit(ctx context.Context, cmd ResolveEscalationCommand, esc *escalation.Escalation) {
	entry, err := audit.NewEntry(
		esc.ComplaintID(),
		audit.ActionEscalationResolved,
		audit.Actor{ID: cmd.Viewer.UserID, Name: cmd.ActorName, Role: cmd.Viewer.Role.String()},
		nil,
		map[string]interface{}{"escalation_id": esc.ID()},
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
