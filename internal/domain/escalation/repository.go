package escalation

import (
	"context"
)

type EscalationRepository interface {
	// Save inserts the escalation. Storage enforces at most one unresolved
	// escalation per complaint; a second insert surfaces as a conflict error.
	Save(ctx context.Context, escalation *Escalation) error
	Update(ctx context.Context, escalation *Escalation) error
	GetByID(ctx context.Context, escalationID uint) (*Escalation, error)
	GetByComplaintID(ctx context.Context, complaintID uint) ([]*Escalation, error)
	// GetUnresolvedByComplaintID returns nil, nil when no unresolved
	// escalation exists for the complaint.
	GetUnresolvedByComplaintID(ctx context.Context, complaintID uint) (*Escalation, error)
	ListUnresolved(ctx context.Context, page, pageSize int) ([]*Escalation, int64, error)
}
