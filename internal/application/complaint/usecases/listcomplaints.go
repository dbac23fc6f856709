package usecases

import (
	"context"
	"time"

	"jannivaran/internal/application/complaint/dto"
	"jannivaran/internal/domain/complaint"
	vo "jannivaran/internal/domain/complaint/valueobjects"
	"jannivaran/internal/domain/sla"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
	"jannivaran/internal/shared/utils"
)

type ListComplaintsQuery struct {
	Status    string
	Priority  string
	Category  string
	SLAStatus string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
	Viewer    complaint.Viewer
}

type ListComplaintsResult struct {
	Complaints []dto.ComplaintDTO
	Total      int64
	Page       int
	PageSize   int
}

type ListComplaintsUseCase struct {
	complaintRepo complaint.ComplaintRepository
	logger        logger.Interface
}

func NewListComplaintsUseCase(
	complaintRepo complaint.ComplaintRepository,
	logger logger.Interface,
) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *ListComplaintsUseCase) Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	// The SLA status is derived on read, so it cannot be pushed into SQL.
	// The scoped set is loaded unpaged and paginated over the matches so the
	// total and page boundaries reflect the filtered set.
	if query.SLAStatus != "" {
		return uc.listBySLAStatus(ctx, filter, query.SLAStatus, now)
	}

	complaints, total, err := uc.complaintRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, err
	}

	return &ListComplaintsResult{
		Complaints: dto.FromEntities(complaints, now),
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

func (uc *ListComplaintsUseCase) listBySLAStatus(
	ctx context.Context,
	filter complaint.ComplaintFilter,
	slaStatus string,
	now time.Time,
) (*ListComplaintsResult, error) {
	unpaged := filter
	unpaged.Page = 0
	unpaged.PageSize = 0

	complaints, _, err := uc.complaintRepo.List(ctx, unpaged)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "error", err)
		return nil, err
	}

	matched := filterBySLAStatus(complaints, slaStatus, now)

	start := (filter.Page - 1) * filter.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + filter.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return &ListComplaintsResult{
		Complaints: dto.FromEntities(matched[start:end], now),
		Total:      int64(len(matched)),
		Page:       filter.Page,
		PageSize:   filter.PageSize,
	}, nil
}

func (uc *ListComplaintsUseCase) buildFilter(query ListComplaintsQuery) (complaint.ComplaintFilter, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := complaint.ComplaintFilter{
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	if query.Status != "" {
		status, err := vo.NewComplaintStatus(query.Status)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return filter, errors.NewValidationError(err.Error())
		}
		filter.Category = &category
	}
	if query.SLAStatus != "" {
		switch sla.Status(query.SLAStatus) {
		case sla.StatusOnTrack, sla.StatusAtRisk, sla.StatusBreached:
		default:
			return filter, errors.NewValidationError("invalid SLA status filter")
		}
	}

	return filter.ScopedTo(query.Viewer), nil
}

func filterBySLAStatus(complaints []*complaint.Complaint, slaStatus string, now time.Time) []*complaint.Complaint {
	want := sla.Status(slaStatus)
	out := make([]*complaint.Complaint, 0, len(complaints))
	for _, c := range complaints {
		if c.SLAEvaluation(now).Status == want {
			out = append(out, c)
		}
	}
	return out
}
