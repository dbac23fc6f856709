package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jannivaran/internal/domain/escalation"
	"jannivaran/internal/infrastructure/persistence/mappers"
	"jannivaran/internal/infrastructure/persistence/models"
	db "jannivaran/internal/shared/db"
	"jannivaran/internal/shared/errors"
)

type EscalationRepository struct {
	db     *gorm.DB
	mapper mappers.EscalationMapper
}

func NewEscalationRepository(database *gorm.DB) *EscalationRepository {
	return &EscalationRepository{
		db:     database,
		mapper: mappers.NewEscalationMapper(),
	}
}

func (r *EscalationRepository) Save(ctx context.Context, esc *escalation.Escalation) error {
	model := r.mapper.ToModel(esc)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("complaint already has an unresolved escalation", err.Error())
		}
		return fmt.Errorf("failed to save escalation: %w", err)
	}

	if esc.ID() == 0 {
		if err := esc.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *EscalationRepository) Update(ctx context.Context, esc *escalation.Escalation) error {
	model := r.mapper.ToModel(esc)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") forces NULL writes so resolving clears the active marker.
	result := tx.
		Model(&models.EscalationModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update escalation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("escalation not found")
	}

	return nil
}

func (r *EscalationRepository) GetByID(ctx context.Context, escalationID uint) (*escalation.Escalation, error) {
	var model models.EscalationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, escalationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("escalation not found")
		}
		return nil, fmt.Errorf("failed to find escalation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EscalationRepository) GetByComplaintID(ctx context.Context, complaintID uint) ([]*escalation.Escalation, error) {
	var escalationModels []models.EscalationModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("complaint_id = ?", complaintID).
		Order("escalated_at DESC").
		Find(&escalationModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load escalations: %w", err)
	}

	escalations := make([]*escalation.Escalation, len(escalationModels))
	for i := range escalationModels {
		esc, err := r.mapper.ToDomain(&escalationModels[i])
		if err != nil {
			return nil, err
		}
		escalations[i] = esc
	}

	return escalations, nil
}

func (r *EscalationRepository) GetUnresolvedByComplaintID(ctx context.Context, complaintID uint) (*escalation.Escalation, error) {
	var model models.EscalationModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("complaint_id = ? AND active IS NOT NULL", complaintID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find unresolved escalation: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *EscalationRepository) ListUnresolved(ctx context.Context, page, pageSize int) ([]*escalation.Escalation, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.
		Model(&models.EscalationModel{}).
		Where("active IS NOT NULL")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count unresolved escalations: %w", err)
	}

	query = query.Order("escalated_at DESC")
	if pageSize > 0 {
		query = query.Limit(pageSize).Offset((page - 1) * pageSize)
	}

	var escalationModels []models.EscalationModel
	if err := query.Find(&escalationModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list unresolved escalations: %w", err)
	}

	escalations := make([]*escalation.Escalation, len(escalationModels))
	for i := range escalationModels {
		esc, err := r.mapper.ToDomain(&escalationModels[i])
		if err != nil {
			return nil, 0, err
		}
		escalations[i] = esc
	}

	return escalations, total, nil
}
