package usecases

import (
	"context"
	"time"

	"jannivaran/internal/application/notification"
	"jannivaran/internal/domain/audit"
	"jannivaran/internal/domain/complaint"
	vo "jannivaran/internal/domain/complaint/valueobjects"
	"jannivaran/internal/domain/escalation"
	"jannivaran/internal/domain/sla"
	"jannivaran/internal/domain/user"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
)

type SweepResult struct {
	Scanned   int
	Escalated int
	Warned    int
}

// SweepUseCase walks all active complaints, escalates the ones past their
// deadline, and sends warning emails for the ones entering the warning
// window. It runs from the background worker and must never abort the whole
// pass because a single complaint fails.
type SweepUseCase struct {
	complaintRepo  complaint.ComplaintRepository
	escalationRepo escalation.EscalationRepository
	userRepo       user.UserRepository
	auditRepo      audit.AuditRepository
	notifier       notification.Service
	logger         logger.Interface
}

func NewSweepUseCase(
	complaintRepo complaint.ComplaintRepository,
	escalationRepo escalation.EscalationRepository,
	userRepo user.UserRepository,
	auditRepo audit.AuditRepository,
	notifier notification.Service,
	logger logger.Interface,
) *SweepUseCase {
	return &SweepUseCase{
		complaintRepo:  complaintRepo,
		escalationRepo: escalationRepo,
		userRepo:       userRepo,
		auditRepo:      auditRepo,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *SweepUseCase) Execute(ctx context.Context) (*SweepResult, error) {
	active, err := uc.complaintRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Errorw("sweep failed to load active complaints", "error", err)
		return nil, err
	}

	now := time.Now().UTC()
	result := &SweepResult{Scanned: len(active)}

	for _, c := range active {
		eval := c.SLAEvaluation(now)

		switch {
		case eval.Status == sla.StatusBreached:
			if uc.escalateBreached(ctx, c, eval) {
				result.Escalated++
			}
		case c.NeedsSLAWarning(now):
			if uc.warn(ctx, c, eval) {
				result.Warned++
			}
		}
	}

	uc.logger.Infow("sla sweep finished",
		"scanned", result.Scanned,
		"escalated", result.Escalated,
		"warned", result.Warned,
	)
	return result, nil
}

func (uc *SweepUseCase) escalateBreached(ctx context.Context, c *complaint.Complaint, eval sla.Evaluation) bool {
	existing, err := uc.escalationRepo.GetUnresolvedByComplaintID(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("sweep failed to check escalation", "error", err, "complaint_id", c.ID())
		return false
	}
	if existing != nil {
		return false
	}

	esc, err := escalation.NewEscalation(
		c.ID(),
		c.TrackingID(),
		escalation.ReasonSLABreach,
		c.Department(),
		escalation.SystemActorID,
		"SLA deadline passed",
	)
	if err != nil {
		uc.logger.Errorw("sweep failed to build escalation", "error", err, "complaint_id", c.ID())
		return false
	}

	// A concurrent sweep or manual escalation may have won the race; the
	// unique index turns that into a conflict we simply skip.
	if err := uc.escalationRepo.Save(ctx, esc); err != nil {
		if errors.IsConflictError(err) || errors.IsDuplicateError(err) {
			return false
		}
		uc.logger.Errorw("sweep failed to save escalation", "error", err, "complaint_id", c.ID())
		return false
	}

	if c.Status() != vo.StatusEscalated {
		if err := c.Escalate(); err != nil {
			uc.logger.Warnw("sweep could not move complaint to escalated", "error", err, "complaint_id", c.ID())
		} else if err := uc.complaintRepo.Update(ctx, c); err != nil {
			uc.logger.Errorw("sweep failed to update complaint", "error", err, "complaint_id", c.ID())
		}
	}

	uc.recordAudit(ctx, c, esc)
	uc.notifyBreach(ctx, c, eval)

	uc.logger.Infow("complaint auto-escalated",
		"complaint_id", c.ID(),
		"tracking_id", c.TrackingID(),
		"deadline", eval.Deadline,
	)
	return true
}

func (uc *SweepUseCase) warn(ctx context.Context, c *complaint.Complaint, eval sla.Evaluation) bool {
	citizen, err := uc.userRepo.GetByID(ctx, c.CitizenID())
	if err != nil {
		uc.logger.Warnw("sweep failed to load citizen for warning", "error", err, "complaint_id", c.ID())
		return false
	}

	event := complaint.NewSLAWarningEvent(c.ID(), c.TrackingID(), eval.RemainingHours, eval.Deadline, time.Now().UTC())
	if err := uc.notifier.SendSLAWarning(ctx, citizen.Email(), event); err != nil {
		uc.logger.Warnw("sweep failed to send warning email", "error", err, "complaint_id", c.ID())
		return false
	}

	if err := c.MarkSLAWarned(); err != nil {
		uc.logger.Warnw("sweep failed to mark complaint warned", "error", err, "complaint_id", c.ID())
		return false
	}
	// The stamp is a single-column conditional write; a concurrent pass that
	// already warned surfaces as a conflict and the warning is not recounted.
	if err := uc.complaintRepo.MarkSLAWarned(ctx, c.ID(), *c.SLAWarnedAt()); err != nil {
		if errors.IsConflictError(err) {
			return false
		}
		uc.logger.Errorw("sweep failed to persist warning marker", "error", err, "complaint_id", c.ID())
		return false
	}
	return true
}

func (uc *SweepUseCase) recordAudit(ctx context.Context, c *complaint.Complaint, esc *escalation.Escalation) {
	entry, err := audit.NewEntry(
		c.ID(),
		audit.ActionEscalated,
		audit.SystemActor,
		nil,
		map[string]interface{}{
			"reason":       esc.Reason().String(),
			"escalated_to": esc.EscalatedTo(),
		},
		map[string]interface{}{"deadline": c.SLADeadline()},
	)
	if err != nil {
		uc.logger.Warnw("failed to build audit entry", "error", err, "complaint_id", c.ID())
		return
	}
	if err := uc.auditRepo.Save(ctx, entry); err != nil {
		uc.logger.Warnw("failed to write audit entry", "error", err, "complaint_id", c.ID())
	}
}

func (uc *SweepUseCase) notifyBreach(ctx context.Context, c *complaint.Complaint, eval sla.Evaluation) {
	citizen, err := uc.userRepo.GetByID(ctx, c.CitizenID())
	if err != nil {
		uc.logger.Warnw("failed to load citizen for breach email", "error", err, "complaint_id", c.ID())
		return
	}

	event := complaint.NewSLABreachedEvent(c.ID(), c.TrackingID(), eval.Deadline, time.Now().UTC())
	if err := uc.notifier.SendSLABreach(ctx, citizen.Email(), event); err != nil {
		uc.logger.Warnw("failed to send breach email", "error", err, "complaint_id", c.ID())
	}
}
