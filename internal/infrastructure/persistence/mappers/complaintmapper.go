package mappers

import (
	"fmt"

	"jannivaran/internal/domain/complaint"
	vo "jannivaran/internal/domain/complaint/valueobjects"
	"jannivaran/internal/infrastructure/persistence/models"
)

// ComplaintMapper handles the conversion between Complaint domain entities
// and persistence models.
type ComplaintMapper interface {
	ToModel(c *complaint.Complaint) *models.ComplaintModel
	ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error)
}

type ComplaintMapperImpl struct{}

func NewComplaintMapper() ComplaintMapper {
	return &ComplaintMapperImpl{}
}

func (m *ComplaintMapperImpl) ToModel(c *complaint.Complaint) *models.ComplaintModel {
	return &models.ComplaintModel{
		ID:               c.ID(),
		TrackingID:       c.TrackingID(),
		Title:            c.Title(),
		Description:      c.Description(),
		Category:         c.Category().String(),
		Department:       c.Department(),
		Priority:         c.Priority().String(),
		Status:           c.Status().String(),
		Location:         c.Location(),
		CitizenID:        c.CitizenID(),
		AssigneeID:       c.AssigneeID(),
		SLAAssignedHours: c.SLAAssignedHours(),
		SLADeadline:      c.SLADeadline().UnixMilli(),
		ResolutionNote:   c.ResolutionNote(),
		AssignedAt:       timePtrToMillis(c.AssignedAt()),
		InProgressAt:     timePtrToMillis(c.InProgressAt()),
		ResolvedAt:       timePtrToMillis(c.ResolvedAt()),
		ClosedAt:         timePtrToMillis(c.ClosedAt()),
		EscalatedAt:      timePtrToMillis(c.EscalatedAt()),
		SLAWarnedAt:      timePtrToMillis(c.SLAWarnedAt()),
		LastStatusChange: c.LastStatusChange().UnixMilli(),
		Version:          c.Version(),
		CreatedAt:        c.CreatedAt().UnixMilli(),
		UpdatedAt:        c.UpdatedAt().UnixMilli(),
	}
}

func (m *ComplaintMapperImpl) ToDomain(model *models.ComplaintModel) (*complaint.Complaint, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid category for complaint %d: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority for complaint %d: %w", model.ID, err)
	}
	status, err := vo.NewComplaintStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status for complaint %d: %w", model.ID, err)
	}

	return complaint.ReconstructComplaint(
		model.ID,
		model.TrackingID,
		model.Title,
		model.Description,
		category,
		model.Department,
		priority,
		status,
		model.Location,
		model.CitizenID,
		model.AssigneeID,
		model.SLAAssignedHours,
		millisToTime(model.SLADeadline),
		model.ResolutionNote,
		millisPtrToTime(model.AssignedAt),
		millisPtrToTime(model.InProgressAt),
		millisPtrToTime(model.ResolvedAt),
		millisPtrToTime(model.ClosedAt),
		millisPtrToTime(model.EscalatedAt),
		millisPtrToTime(model.SLAWarnedAt),
		millisToTime(model.LastStatusChange),
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
