package usecases

import (
	"context"
	"time"

	"jannivaran/internal/domain/audit"
	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/shared/errors"
	"jannivaran/internal/shared/logger"
)

type GetAuditTrailQuery struct {
	ComplaintID uint
	Viewer      complaint.Viewer
}

type AuditEntryDTO struct {
	ID        uint                   `json:"id"`
	Action    string                 `json:"action"`
	ActorID   uint                   `json:"actor_id"`
	ActorName string                 `json:"actor_name"`
	ActorRole string                 `json:"actor_role"`
	OldValues map[string]interface{} `json:"old_values,omitempty"`
	NewValues map[string]interface{} `json:"new_values,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type GetAuditTrailUseCase struct {
	auditRepo audit.AuditRepository
	logger    logger.Interface
}

func NewGetAuditTrailUseCase(
	auditRepo audit.AuditRepository,
	logger logger.Interface,
) *GetAuditTrailUseCase {
	return &GetAuditTrailUseCase{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (uc *GetAuditTrailUseCase) Execute(ctx context.Context, query GetAuditTrailQuery) ([]AuditEntryDTO, error) {
	if query.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}
	if !query.Viewer.Role.IsStaff() {
		return nil, errors.NewForbiddenError("audit trail is restricted to officials")
	}

	entries, err := uc.auditRepo.GetByComplaintID(ctx, query.ComplaintID)
	if err != nil {
		uc.logger.Errorw("failed to load audit trail", "error", err, "complaint_id", query.ComplaintID)
		return nil, err
	}

	out := make([]AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		actor := e.Actor()
		out = append(out, AuditEntryDTO{
			ID:        e.ID(),
			Action:    string(e.Action()),
			ActorID:   actor.ID,
			ActorName: actor.Name,
			ActorRole: actor.Role,
			OldValues: e.OldValues(),
			NewValues: e.NewValues(),
			Metadata:  e.Metadata(),
			CreatedAt: e.CreatedAt(),
		})
	}
	return out, nil
}
