package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"jannivaran/internal/domain/audit"
	"jannivaran/internal/infrastructure/persistence/models"
)

// AuditLogMapper handles the conversion between audit entries and
// persistence models.
type AuditLogMapper interface {
	ToModel(e *audit.Entry) (*models.AuditLogModel, error)
	ToDomain(model *models.AuditLogModel) (*audit.Entry, error)
}

type AuditLogMapperImpl struct{}

func NewAuditLogMapper() AuditLogMapper {
	return &AuditLogMapperImpl{}
}

func (m *AuditLogMapperImpl) ToModel(e *audit.Entry) (*models.AuditLogModel, error) {
	actor := e.Actor()
	model := &models.AuditLogModel{
		ID:          e.ID(),
		ComplaintID: e.ComplaintID(),
		Action:      string(e.Action()),
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		ActorRole:   actor.Role,
		CreatedAt:   e.CreatedAt().UnixMilli(),
	}

	var err error
	if model.OldValues, err = marshalValues(e.OldValues()); err != nil {
		return nil, fmt.Errorf("failed to marshal old values: %w", err)
	}
	if model.NewValues, err = marshalValues(e.NewValues()); err != nil {
		return nil, fmt.Errorf("failed to marshal new values: %w", err)
	}
	if model.Metadata, err = marshalValues(e.Metadata()); err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	return model, nil
}

func (m *AuditLogMapperImpl) ToDomain(model *models.AuditLogModel) (*audit.Entry, error) {
	oldValues, err := unmarshalValues(model.OldValues)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal old values (id=%d): %w", model.ID, err)
	}
	newValues, err := unmarshalValues(model.NewValues)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal new values (id=%d): %w", model.ID, err)
	}
	metadata, err := unmarshalValues(model.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata (id=%d): %w", model.ID, err)
	}

	return audit.ReconstructEntry(
		model.ID,
		model.ComplaintID,
		audit.Action(model.Action),
		audit.Actor{ID: model.ActorID, Name: model.ActorName, Role: model.ActorRole},
		oldValues,
		newValues,
		metadata,
		millisToTime(model.CreatedAt),
	)
}

func marshalValues(values map[string]interface{}) (datatypes.JSON, error) {
	if len(values) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func unmarshalValues(raw datatypes.JSON) (map[string]interface{}, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var values map[string]interface{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, err
	}
	return values, nil
}
