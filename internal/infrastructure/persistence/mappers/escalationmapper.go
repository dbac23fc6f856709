package mappers

import (
	"fmt"

	"jannivaran/internal/domain/escalation"
	"jannivaran/internal/infrastructure/persistence/models"
)

// EscalationMapper handles the conversion between Escalation domain entities
// and persistence models.
type EscalationMapper interface {
	ToModel(e *escalation.Escalation) *models.EscalationModel
	ToDomain(model *models.EscalationModel) (*escalation.Escalation, error)
}

type EscalationMapperImpl struct{}

func NewEscalationMapper() EscalationMapper {
	return &EscalationMapperImpl{}
}

func (m *EscalationMapperImpl) ToModel(e *escalation.Escalation) *models.EscalationModel {
	model := &models.EscalationModel{
		ID:            e.ID(),
		ComplaintID:   e.ComplaintID(),
		TrackingID:    e.TrackingID(),
		Reason:        e.Reason().String(),
		EscalatedFrom: e.EscalatedFrom(),
		EscalatedTo:   e.EscalatedTo(),
		EscalatedBy:   e.EscalatedBy(),
		Notes:         e.Notes(),
		EscalatedAt:   e.EscalatedAt().UnixMilli(),
		ResolvedAt:    timePtrToMillis(e.ResolvedAt()),
	}

	// Active stays NULL on resolved rows so the unique index only guards
	// unresolved ones.
	if !e.IsResolved() {
		active := true
		model.Active = &active
	}

	return model
}

func (m *EscalationMapperImpl) ToDomain(model *models.EscalationModel) (*escalation.Escalation, error) {
	reason, err := escalation.NewReason(model.Reason)
	if err != nil {
		return nil, fmt.Errorf("invalid reason for escalation %d: %w", model.ID, err)
	}

	return escalation.ReconstructEscalation(
		model.ID,
		model.ComplaintID,
		model.TrackingID,
		reason,
		model.EscalatedFrom,
		model.EscalatedTo,
		model.EscalatedBy,
		model.Notes,
		model.Active == nil,
		millisToTime(model.EscalatedAt),
		millisPtrToTime(model.ResolvedAt),
	)
}
