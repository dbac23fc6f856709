package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jannivaran/internal/domain/audit"
	"jannivaran/internal/infrastructure/persistence/mappers"
	"jannivaran/internal/infrastructure/persistence/models"
	db "jannivaran/internal/shared/db"
)

// AuditLogRepository is append-only; entries are never updated or deleted.
type AuditLogRepository struct {
	db     *gorm.DB
	mapper mappers.AuditLogMapper
}

func NewAuditLogRepository(database *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{
		db:     database,
		mapper: mappers.NewAuditLogMapper(),
	}
}

func (r *AuditLogRepository) Save(ctx context.Context, entry *audit.Entry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save audit entry: %w", err)
	}

	if entry.ID() == 0 {
		if err := entry.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *AuditLogRepository) GetByComplaintID(ctx context.Context, complaintID uint) ([]*audit.Entry, error) {
	var entryModels []models.AuditLogModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("complaint_id = ?", complaintID).
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load audit entries: %w", err)
	}

	entries := make([]*audit.Entry, len(entryModels))
	for i := range entryModels {
		entry, err := r.mapper.ToDomain(&entryModels[i])
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}

	return entries, nil
}
