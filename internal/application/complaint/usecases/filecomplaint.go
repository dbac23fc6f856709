package usecases

import (
	"context"
	"fmt"
	"time"

	"jannivaran/internal/application/notification"
	"jannivaran/internal/domain/audit"
	"jannivaran/internal/domain/classification"
	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/domain/user"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
)

// trackingIDAttempts bounds retries when a generated tracking ID collides.
const trackingIDAttempts = 3

type FileComplaintCommand struct {
	Title       string
	Description string
	Category    string
	Location    string
	CitizenID   uint
}

type FileComplaintResult struct {
	ComplaintID uint
	TrackingID  string
	Category    string
	Department  string
	Priority    string
	Status      string
	Deadline    time.Time
	CreatedAt   time.Time
}

type FileComplaintUseCase struct {
	complaintRepo complaint.ComplaintRepository
	userRepo      user.UserRepository
	auditRepo     audit.AuditRepository
	idGen         complaint.TrackingIDGenerator
	rateLimiter   RateLimiter
	notifier      notification.Service
	logger        logger.Interface
}

func NewFileComplaintUseCase(
	complaintRepo complaint.ComplaintRepository,
	userRepo user.UserRepository,
	auditRepo audit.AuditRepository,
	idGen complaint.TrackingIDGenerator,
	rateLimiter RateLimiter,
	notifier notification.Service,
	logger logger.Interface,
) *FileComplaintUseCase {
	return &FileComplaintUseCase{
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		auditRepo:     auditRepo,
		idGen:         idGen,
		rateLimiter:   rateLimiter,
		notifier:      notifier,
		logger:        logger,
	}
}

func (uc *FileComplaintUseCase) Execute(ctx context.Context, cmd FileComplaintCommand) (*FileComplaintResult, error) {
	uc.logger.Infow("executing file complaint use case", "title", cmd.Title, "citizen_id", cmd.CitizenID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid file complaint command", "error", err)
		return nil, err
	}

	if uc.rateLimiter != nil {
		allowed, err := uc.rateLimiter.Allow(ctx, fmt.Sprintf("complaint:file:%d", cmd.CitizenID))
		if err != nil {
			uc.logger.Errorw("rate limiter check failed", "error", err, "citizen_id", cmd.CitizenID)
			return nil, err
		}
		if !allowed {
			return nil, errors.NewConflictError("too many complaints filed recently, please try again later")
		}
	}

	citizen, err := uc.userRepo.GetByID(ctx, cmd.CitizenID)
	if err != nil {
		uc.logger.Errorw("failed to load citizen", "error", err, "citizen_id", cmd.CitizenID)
		return nil, err
	}

	result := classification.Classify(cmd.Description, cmd.Category)

	newComplaint, err := complaint.NewComplaint(
		cmd.Title,
		cmd.Description,
		result.Category,
		result.Priority,
		result.Department,
		cmd.Location,
		cmd.CitizenID,
	)
	if err != nil {
		uc.logger.Errorw("failed to create complaint entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.saveWithTrackingID(ctx, newComplaint); err != nil {
		uc.logger.Errorw("failed to save complaint", "error", err)
		return nil, err
	}

	uc.recordAudit(ctx, newComplaint, citizen)
	uc.notifyCitizen(ctx, newComplaint, citizen)

	uc.logger.Infow("complaint filed successfully",
		"complaint_id", newComplaint.ID(),
		"tracking_id", newComplaint.TrackingID(),
		"department", newComplaint.Department(),
		"priority", newComplaint.Priority().String(),
	)

	return &FileComplaintResult{
		ComplaintID: newComplaint.ID(),
		TrackingID:  newComplaint.TrackingID(),
		Category:    newComplaint.Category().String(),
		Department:  newComplaint.Department(),
		Priority:    newComplaint.Priority().String(),
		Status:      newComplaint.Status().String(),
		Deadline:    newComplaint.SLADeadline(),
		CreatedAt:   newComplaint.CreatedAt(),
	}, nil
}

// saveWithTrackingID retries with a fresh tracking ID when the random suffix
// collides with an existing complaint.
func (uc *FileComplaintUseCase) saveWithTrackingID(ctx context.Context, c *complaint.Complaint) error {
	var lastErr error
	for attempt := 0; attempt < trackingIDAttempts; attempt++ {
		trackingID, err := uc.idGen.Generate(ctx)
		if err != nil {
			return errors.NewInternalError("failed to generate tracking ID", err.Error())
		}

		trial := *c
		if err := trial.SetTrackingID(trackingID); err != nil {
			return errors.NewInternalError(err.Error())
		}

		if err := uc.complaintRepo.Save(ctx, &trial); err != nil {
			if errors.IsDuplicateError(err) || errors.IsConflictError(err) {
				lastErr = err
				continue
			}
			return err
		}

		*c = trial
		return nil
	}
	return errors.NewConflictError("failed to allocate a unique tracking ID", lastErr.Error())
}

func (uc *FileComplaintUseCase) recordAudit(ctx context.Context, c *complaint.Complaint, citizen *user.User) {
	entry, err := audit.NewEntry(
		c.ID(),
		audit.ActionComplaintFiled,
		audit.Actor{ID: citizen.ID(), Name: citizen.Name(), Role: citizen.Role().String()},
		nil,
		map[string]interface{}{
			"tracking_id": c.TrackingID(),
			"category":    c.Category().String(),
			"department":  c.Department(),
			"priority":    c.Priority().String(),
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

func (uc *FileComplaintUseCase) notifyCitizen(ctx context.Context, c *complaint.Complaint, citizen *user.User) {
	event := complaint.NewComplaintFiledEvent(
		c.ID(),
		c.TrackingID(),
		c.Title(),
		c.CitizenID(),
		c.Priority().String(),
		c.Category().String(),
		c.Department(),
		time.Now().UTC(),
	)

	if err := uc.notifier.SendComplaintSubmitted(ctx, citizen.Email(), event); err != nil {
		uc.logger.Warnw("failed to send submission email", "error", err, "tracking_id", c.TrackingID())
	}
	if err := uc.notifier.SendComplaintRouted(ctx, citizen.Email(), event); err != nil {
		uc.logger.Warnw("failed to send routing email", "error", err, "tracking_id", c.TrackingID())
	}
}

func (uc *FileComplaintUseCase) validateCommand(cmd FileComplaintCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}
	if cmd.CitizenID == 0 {
		return errors.NewValidationError("citizen ID is required")
	}
	return nil
}
