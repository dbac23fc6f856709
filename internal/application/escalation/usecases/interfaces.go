package usecases

import (
	"context"

	"jannivaran/internal/application/escalation/dto"
)

type EscalateComplaintExecutor interface {
	Execute(ctx context.Context, cmd EscalateComplaintCommand) (*dto.EscalationDTO, error)
}

type ResolveEscalationExecutor interface {
	Execute(ctx context.Context, cmd ResolveEscalationCommand) (*dto.EscalationDTO, error)
}

type ListEscalationsExecutor interface {
	Execute(ctx context.Context, query ListEscalationsQuery) (*ListEscalationsResult, error)
}

type ListComplaintEscalationsExecutor interface {
	Execute(ctx context.Context, query ListComplaintEscalationsQuery) ([]dto.EscalationDTO, error)
}

type SweepExecutor interface {
	Execute(ctx context.Context) (*SweepResult, error)
}
