package usecases

import (
	"context"

	"jannivaran/internal/application/escalation/dto"
	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/domain/escalation"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
	"jannivaran/internal/shared/utils"
)

type ListEscalationsQuery struct {
	Page     int
	PageSize int
	Viewer   complaint.Viewer
}

type ListEscalationsResult struct {
	Escalations []dto.EscalationDTO
	Total       int64
	Page        int
	PageSize    int
}

type ListEscalationsUseCase struct {
	escalationRepo escalation.EscalationRepository
	logger         logger.Interface
}

func NewListEscalationsUseCase(
	escalationRepo escalation.EscalationRepository,
	logger logger.Interface,
) *ListEscalationsUseCase {
	return &ListEscalationsUseCase{
		escalationRepo: escalationRepo,
		logger:         logger,
	}
}

// Execute lists unresolved escalations across all complaints, newest first.
func (uc *ListEscalationsUseCase) Execute(ctx context.Context, query ListEscalationsQuery) (*ListEscalationsResult, error) {
	if !query.Viewer.Role.IsStaff() {
		return nil, errors.NewForbiddenError("only officials and admins can list escalations")
	}

	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	escalations, total, err := uc.escalationRepo.ListUnresolved(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list unresolved escalations", "error", err)
		return nil, err
	}

	return &ListEscalationsResult{
		Escalations: dto.FromEntities(escalations),
		Total:       total,
		Page:        pagination.Page,
		PageSize:    pagination.PageSize,
	}, nil
}
