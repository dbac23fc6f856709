package usecases

import (
	"context"
	"time"

	"jannivaran/internal/application/complaint/dto"
	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
)

type GetComplaintQuery struct {
	ComplaintID uint
	Viewer      complaint.Viewer
}

type GetComplaintUseCase struct {
	complaintRepo complaint.ComplaintRepository
	logger        logger.Interface
}

func NewGetComplaintUseCase(
	complaintRepo complaint.ComplaintRepository,
	logger logger.Interface,
) *GetComplaintUseCase {
	return &GetComplaintUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *GetComplaintUseCase) Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error) {
	if query.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}

	c, err := uc.complaintRepo.GetByID(ctx, query.ComplaintID)
	if err != nil {
		return nil, err
	}

	if !c.CanBeViewedBy(query.Viewer) {
		uc.logger.Warnw("complaint access denied",
			"complaint_id", query.ComplaintID,
			"viewer_id", query.Viewer.UserID,
			"viewer_role", query.Viewer.Role.String(),
		)
		return nil, errors.NewForbiddenError("you do not have access to this complaint")
	}

	result := dto.FromEntity(c, time.Now().UTC())
	return &result, nil
}
