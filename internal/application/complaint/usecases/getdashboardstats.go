package usecases

import (
	"context"
	"time"

	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/domain/sla"
	"jannivaran/internal/shared/logger"
)

type DashboardStatsResult struct {
	Total              int64            `json:"total"`
	ByStatus           map[string]int64 `json:"by_status"`
	ByDepartment       map[string]int64 `json:"by_department"`
	Breached           int64            `json:"breached"`
	AtRisk             int64            `json:"at_risk"`
	AvgResolutionHours float64          `json:"avg_resolution_hours"`
	SLAComplianceRate  float64          `json:"sla_compliance_rate"`
	ResolvedWithinSLA  int64            `json:"resolved_within_sla"`
	ResolvedTotal      int64            `json:"resolved_total"`
	GeneratedAt        time.Time        `json:"generated_at"`
}

type GetDashboardStatsUseCase struct {
	complaintRepo complaint.ComplaintRepository
	logger        logger.Interface
}

func NewGetDashboardStatsUseCase(
	complaintRepo complaint.ComplaintRepository,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		complaintRepo: complaintRepo,
		logger:        logger,
	}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*DashboardStatsResult, error) {
	byStatus, err := uc.complaintRepo.CountByStatus(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count complaints by status", "error", err)
		return nil, err
	}

	byDepartment, err := uc.complaintRepo.CountByDepartment(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count complaints by department", "error", err)
		return nil, err
	}

	avgResolution, err := uc.complaintRepo.AverageResolutionHours(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute average resolution hours", "error", err)
		return nil, err
	}

	withinSLA, resolvedTotal, err := uc.complaintRepo.CountResolvedWithinSLA(ctx)
	if err != nil {
		uc.logger.Errorw("failed to compute SLA compliance", "error", err)
		return nil, err
	}

	active, err := uc.complaintRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load active complaints", "error", err)
		return nil, err
	}

	now := time.Now().UTC()
	var breached, atRisk int64
	for _, c := range active {
		switch c.SLAEvaluation(now).Status {
		case sla.StatusBreached:
			breached++
		case sla.StatusAtRisk:
			atRisk++
		}
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}

	complianceRate := 100.0
	if resolvedTotal > 0 {
		complianceRate = float64(withinSLA) / float64(resolvedTotal) * 100
	}

	return &DashboardStatsResult{
		Total:              total,
		ByStatus:           byStatus,
		ByDepartment:       byDepartment,
		Breached:           breached,
		AtRisk:             atRisk,
		AvgResolutionHours: avgResolution,
		SLAComplianceRate:  complianceRate,
		ResolvedWithinSLA:  withinSLA,
		ResolvedTotal:      resolvedTotal,
		GeneratedAt:        now,
	}, nil
}
