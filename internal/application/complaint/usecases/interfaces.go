package usecases

import (
	"context"

	"jannivaran/internal/application/complaint/dto"
)

type FileComplaintExecutor interface {
	Execute(ctx context.Context, cmd FileComplaintCommand) (*FileComplaintResult, error)
}

type GetComplaintExecutor interface {
	Execute(ctx context.Context, query GetComplaintQuery) (*dto.ComplaintDTO, error)
}

type TrackComplaintExecutor interface {
	Execute(ctx context.Context, query TrackComplaintQuery) (*dto.TrackingDTO, error)
}

type ListComplaintsExecutor interface {
	Execute(ctx context.Context, query ListComplaintsQuery) (*ListComplaintsResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error)
}

type ChangePriorityExecutor interface {
	Execute(ctx context.Context, cmd ChangePriorityCommand) (*ChangePriorityResult, error)
}

type AssignComplaintExecutor interface {
	Execute(ctx context.Context, cmd AssignComplaintCommand) (*AssignComplaintResult, error)
}

type DeleteComplaintExecutor interface {
	Execute(ctx context.Context, cmd DeleteComplaintCommand) error
}

type InterveneExecutor interface {
	Execute(ctx context.Context, cmd InterveneCommand) (*InterveneResult, error)
}

type GetAuditTrailExecutor interface {
	Execute(ctx context.Context, query GetAuditTrailQuery) ([]AuditEntryDTO, error)
}

type GetDashboardStatsExecutor interface {
	Execute(ctx context.Context) (*DashboardStatsResult, error)
}

// RateLimiter bounds complaint filing per citizen. Allow reports whether the
// action may proceed; implementations decide how to treat backend errors.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
