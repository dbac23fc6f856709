package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/infrastructure/persistence/mappers"
	"jannivaran/internal/infrastructure/persistence/models"
	db "jannivaran/internal/shared/db"
	"jannivaran/internal/shared/errors"
)

// allowedComplaintOrderByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection attacks.
var allowedComplaintOrderByFields = map[string]bool{
	"id":           true,
	"tracking_id":  true,
	"title":        true,
	"status":       true,
	"priority":     true,
	"category":     true,
	"department":   true,
	"citizen_id":   true,
	"assignee_id":  true,
	"sla_deadline": true,
	"created_at":   true,
	"updated_at":   true,
}

var activeStatuses = []string{"pending", "in-progress", "escalated"}

type ComplaintRepository struct {
	db     *gorm.DB
	mapper mappers.ComplaintMapper
}

func NewComplaintRepository(database *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{
		db:     database,
		mapper: mappers.NewComplaintMapper(),
	}
}

func (r *ComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("tracking ID already exists", err.Error())
		}
		return fmt.Errorf("failed to save complaint: %w", err)
	}

	if c.ID() == 0 {
		if err := c.SetID(model.ID); err != nil {
			return err
		}
	}
	c.SyncVersion()

	return nil
}

// Update persists the complaint with an optimistic version check: the row
// must still carry the version the aggregate was loaded at. A stale writer
// matches zero rows and reports a conflict instead of overwriting newer data.
func (r *ComplaintRepository) Update(ctx context.Context, c *complaint.Complaint) error {
	model := r.mapper.ToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ComplaintModel{}).
		Where("id = ? AND version = ?", model.ID, c.LoadedVersion()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update complaint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("complaint was modified by another request")
	}
	c.SyncVersion()

	return nil
}

// MarkSLAWarned stamps the warning marker without touching any other column,
// so a sweep racing a real edit cannot clobber it. The IS NULL guard makes
// the stamp first-writer-wins, and the version bump makes any full-row write
// loaded before the stamp conflict instead of erasing it.
func (r *ComplaintRepository) MarkSLAWarned(ctx context.Context, complaintID uint, warnedAt time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ComplaintModel{}).
		Where("id = ? AND sla_warned_at IS NULL", complaintID).
		Updates(map[string]interface{}{
			"sla_warned_at": warnedAt.UnixMilli(),
			"updated_at":    warnedAt.UnixMilli(),
			"version":       gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark complaint warned: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("SLA warning already recorded")
	}

	return nil
}

func (r *ComplaintRepository) Delete(ctx context.Context, complaintID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ComplaintModel{}, complaintID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete complaint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("complaint not found")
	}
	return nil
}

func (r *ComplaintRepository) GetByID(ctx context.Context, complaintID uint) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, complaintID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("complaint not found")
		}
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ComplaintRepository) GetByTrackingID(ctx context.Context, trackingID string) (*complaint.Complaint, error) {
	var model models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("tracking_id = ?", trackingID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("complaint not found")
		}
		return nil, fmt.Errorf("failed to find complaint: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ComplaintRepository) List(
	ctx context.Context,
	filter complaint.ComplaintFilter,
) ([]*complaint.Complaint, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ComplaintModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.Department != nil {
		query = query.Where("department = ?", *filter.Department)
	}
	if filter.CitizenID != nil {
		query = query.Where("citizen_id = ?", *filter.CitizenID)
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.CreatedAfter != nil {
		query = query.Where("created_at >= ?", filter.CreatedAfter.UnixMilli())
	}
	if filter.CreatedBefore != nil {
		query = query.Where("created_at <= ?", filter.CreatedBefore.UnixMilli())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count complaints: %w", err)
	}

	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedComplaintOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var complaintModels []models.ComplaintModel
	if err := query.Find(&complaintModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list complaints: %w", err)
	}

	complaints := make([]*complaint.Complaint, len(complaintModels))
	for i := range complaintModels {
		c, err := r.mapper.ToDomain(&complaintModels[i])
		if err != nil {
			return nil, 0, err
		}
		complaints[i] = c
	}

	return complaints, total, nil
}

func (r *ComplaintRepository) GetActive(ctx context.Context) ([]*complaint.Complaint, error) {
	var complaintModels []models.ComplaintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("status IN ?", activeStatuses).
		Order("sla_deadline ASC").
		Find(&complaintModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load active complaints: %w", err)
	}

	complaints := make([]*complaint.Complaint, len(complaintModels))
	for i := range complaintModels {
		c, err := r.mapper.ToDomain(&complaintModels[i])
		if err != nil {
			return nil, err
		}
		complaints[i] = c
	}

	return complaints, nil
}

func (r *ComplaintRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countGroupedBy(ctx, "status")
}

func (r *ComplaintRepository) CountByDepartment(ctx context.Context) (map[string]int64, error) {
	return r.countGroupedBy(ctx, "department")
}

func (r *ComplaintRepository) countGroupedBy(ctx context.Context, column string) (map[string]int64, error) {
	type row struct {
		Key   string
		Count int64
	}

	var rows []row
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Model(&models.ComplaintModel{}).
		Select(column + " AS `key`, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count complaints by %s: %w", column, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Key] = r.Count
	}
	return counts, nil
}

func (r *ComplaintRepository) AverageResolutionHours(ctx context.Context) (float64, error) {
	var avg *float64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ComplaintModel{}).
		Select("AVG((resolved_at - created_at) / 3600000.0)").
		Where("resolved_at IS NOT NULL").
		Scan(&avg).Error; err != nil {
		return 0, fmt.Errorf("failed to compute average resolution time: %w", err)
	}

	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *ComplaintRepository) CountResolvedWithinSLA(ctx context.Context) (int64, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.
		Model(&models.ComplaintModel{}).
		Where("resolved_at IS NOT NULL").
		Count(&total).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count resolved complaints: %w", err)
	}

	var within int64
	if err := tx.
		Model(&models.ComplaintModel{}).
		Where("resolved_at IS NOT NULL AND resolved_at <= sla_deadline").
		Count(&within).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count complaints resolved within SLA: %w", err)
	}

	return within, total, nil
}
