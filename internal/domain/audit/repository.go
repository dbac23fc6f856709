package audit

import (
	"context"
)

// AuditRepository is append-only by contract: there is deliberately no
// update or delete operation.
type AuditRepository interface {
	Save(ctx context.Context, entry *Entry) error
	GetByComplaintID(ctx context.Context, complaintID uint) ([]*Entry, error)
}
