package usecases

import (
	"context"
	"time"

	"jannivaran/internal/domain/audit"
	"jannivaran/internal/domain/classification"
	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
)

// Intervention modes available to a citizen on a stalled complaint.
const (
	InterventionCallAuthority = "call-authority"
	InterventionRaiseTicket   = "raise-ticket"
)

type InterveneCommand struct {
	ComplaintID uint
	Mode        string
	Viewer      complaint.Viewer
	ActorName   string
}

type InterveneResult struct {
	ComplaintID uint
	Mode        string
	Contact     *classification.AuthorityContact
	NewPriority string
	NewDeadline *time.Time
}

type InterveneUseCase struct {
	complaintRepo complaint.ComplaintRepository
	auditRepo     audit.AuditRepository
	logger        logger.Interface
}

func NewInterveneUseCase(
	complaintRepo complaint.ComplaintRepository,
	auditRepo audit.AuditRepository,
	logger logger.Interface,
) *InterveneUseCase {
	return &InterveneUseCase{
		complaintRepo: complaintRepo,
		auditRepo:     auditRepo,
		logger:        logger,
	}
}

func (uc *InterveneUseCase) Execute(ctx context.Context, cmd InterveneCommand) (*InterveneResult, error) {
	uc.logger.Infow("executing intervene use case",
		"complaint_id", cmd.ComplaintID,
		"mode", cmd.Mode,
		"citizen_id", cmd.Viewer.UserID,
	)

	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	c, err := uc.complaintRepo.GetByID(ctx, cmd.ComplaintID)
	if err != nil {
		return nil, err
	}

	if c.CitizenID() != cmd.Viewer.UserID && !cmd.Viewer.Role.IsAdmin() {
		return nil, errors.NewForbiddenError("only the filing citizen can intervene on a complaint")
	}

	switch cmd.Mode {
	case InterventionCallAuthority:
		contact := classification.ContactFor(c.Department())
		return &InterveneResult{
			ComplaintID: c.ID(),
			Mode:        cmd.Mode,
			Contact:     &contact,
		}, nil

	case InterventionRaiseTicket:
		return uc.raiseTicket(ctx, cmd, c)

	default:
		return nil, errors.NewValidationError("mode must be call-authority or raise-ticket")
	}
}

func (uc *InterveneUseCase) raiseTicket(ctx context.Context, cmd InterveneCommand, c *complaint.Complaint) (*InterveneResult, error) {
	oldPriority := c.Priority()

	if err := c.RaiseTicket(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.complaintRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update complaint", "error", err, "complaint_id", c.ID())
		return nil, err
	}

	uc.recordAudit(ctx, cmd, c, oldPriority.String())

	uc.logger.Infow("citizen ticket raised",
		"complaint_id", c.ID(),
		"old_priority", oldPriority.String(),
		"new_priority", c.Priority().String(),
	)

	deadline := c.SLADeadline()
	return &InterveneResult{
		ComplaintID: c.ID(),
		Mode:        cmd.Mode,
		NewPriority: c.Priority().String(),
		NewDeadline: &deadline,
	}, nil
}

func (uc *InterveneUseCase) recordAudit(ctx context.Context, cmd InterveneCommand, c *complaint.Complaint, oldPriority string) {
	entry, err := audit.NewEntry(
		c.ID(),
		audit.ActionTicketRaised,
		audit.Actor{ID: cmd.Viewer.UserID, Name: cmd.ActorName, Role: cmd.Viewer.Role.String()},
		map[string]interface{}{"priority": oldPriority},
		map[string]interface{}{"priority": c.Priority().String()},
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
