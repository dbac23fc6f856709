package complaint

import (
	"context"
	"time"

	vo "jannivaran/internal/domain/complaint/valueobjects"
)

type ComplaintRepository interface {
	Save(ctx context.Context, complaint *Complaint) error
	// Update persists the complaint conditionally on its loaded version and
	// returns a conflict error when another writer got there first.
	Update(ctx context.Context, complaint *Complaint) error
	// MarkSLAWarned stamps slaWarnedAt in a single-column write that cannot
	// clobber a concurrent edit. Returns a conflict if the stamp is already set.
	MarkSLAWarned(ctx context.Context, complaintID uint, warnedAt time.Time) error
	Delete(ctx context.Context, complaintID uint) error
	GetByID(ctx context.Context, complaintID uint) (*Complaint, error)
	GetByTrackingID(ctx context.Context, trackingID string) (*Complaint, error)
	List(ctx context.Context, filter ComplaintFilter) ([]*Complaint, int64, error)
	// GetActive returns all complaints still counting against their SLA window.
	GetActive(ctx context.Context) ([]*Complaint, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountByDepartment(ctx context.Context) (map[string]int64, error)
	// AverageResolutionHours averages createdAt..resolvedAt over resolved complaints.
	AverageResolutionHours(ctx context.Context) (float64, error)
	// CountResolvedWithinSLA counts resolved complaints whose resolvedAt did
	// not exceed their deadline, together with the total resolved count.
	CountResolvedWithinSLA(ctx context.Context) (within int64, total int64, err error)
}

type ComplaintFilter struct {
	Status        *vo.ComplaintStatus
	Priority      *vo.Priority
	Category      *vo.Category
	Department    *string
	CitizenID     *uint
	AssigneeID    *uint
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
}

// ScopedTo narrows the filter to what the viewer is allowed to see.
func (f ComplaintFilter) ScopedTo(viewer Viewer) ComplaintFilter {
	switch {
	case viewer.Role.IsAdmin():
		return f
	case viewer.Role.IsStaff():
		dept := viewer.Department
		f.Department = &dept
		return f
	default:
		citizenID := viewer.UserID
		f.CitizenID = &citizenID
		return f
	}
}

// TrackingIDGenerator produces unique public tracking identifiers.
type TrackingIDGenerator interface {
	Generate(ctx context.Context) (string, error)
}
