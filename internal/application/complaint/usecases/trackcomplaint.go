package usecases

import (
	"context"
	"time"

	"jannivaran/internal/application/complaint/dto"
	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/id"
	"jannivaran/internal/shared/logger"
)

type TrackComplaintQuery struct {
	TrackingID string
}

// TrackComplaintUseCase serves the public tracking endpoint. It exposes a
// reduced view and requires no authentication.
type TrackComplaintUseCase struct {
	complaintRepo complaint.ComplaintRepository
	logger        logger.Interface
}

func NewTrackComplaintUseCase(
	complaintRepo complaint.ComplaintRepository,
	logger logger.Interface,
) *TrackComplaintUseCase {
	return &TrackComplaintUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *TrackComplaintUseCase) Execute(ctx context.Context, query TrackComplaintQuery) (*dto.TrackingDTO, error) {
	trackingID := id.NormalizeTrackingID(query.TrackingID)
	if !id.IsValidTrackingID(trackingID) {
		return nil, errors.NewValidationError("invalid tracking ID format")
	}

	c, err := uc.complaintRepo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}

	result := dto.TrackingFromEntity(c, time.Now().UTC())
	return &result, nil
}
