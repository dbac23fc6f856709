package usecases

import (
	"context"

	"jannivaran/internal/application/escalation/dto"
	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/domain/escalation"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
)

type ListComplaintEscalationsQuery struct {
	ComplaintID uint
	Viewer      complaint.Viewer
}

type ListComplaintEscalationsUseCase struct {
	complaintRepo  complaint.ComplaintRepository
	escalationRepo escalation.EscalationRepository
	logger         logger.Interface
}

func NewListComplaintEscalationsUseCase(
	complaintRepo complaint.ComplaintRepository,
	escalationRepo escalation.EscalationRepository,
	logger logger.Interface,
) *ListComplaintEscalationsUseCase {
	return &ListComplaintEscalationsUseCase{
		complaintRepo:  complaintRepo,
		escalationRepo: escalationRepo,
		logger:         logger,
	}
}

// Execute returns the escalation history of a complaint, visible to anyone
// who may view the complaint itself.
func (uc *ListComplaintEscalationsUseCase) Execute(ctx context.Context, query ListComplaintEscalationsQuery) ([]dto.EscalationDTO, error) {
	if query.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	c, err := uc.complaintRepo.GetByID(ctx, query.ComplaintID)
	if err != nil {
		return nil, err
	}

	if !c.CanBeViewedBy(query.Viewer) {
		return nil, errors.NewForbiddenError("you do not have access to this complaint")
	}

	escalations, err := uc.escalationRepo.GetByComplaintID(ctx, query.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to load escalations", "error", err, "complaint_id", query.ComplaintID)
		return nil, err
	}

	return dto.FromEntities(escalations), nil
}
