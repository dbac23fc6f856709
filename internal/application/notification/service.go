// Package notification defines the outbound notification contract used by
// the use case layer. Delivery failures are always non-fatal to the caller.
package notification

import (
	"context"

	"jannivaran/internal/domain/complaint"
)

// Service sends citizen-facing emails. Implementations must not block the
// primary mutation: callers log and swallow any returned error.
type Service interface {
	SendWelcome(ctx context.Context, email, name string) error
	SendComplaintSubmitted(ctx context.Context, email string, event complaint.ComplaintFiledEvent) error
	SendComplaintRouted(ctx context.Context, email string, event complaint.ComplaintFiledEvent) error
	SendStatusChanged(ctx context.Context, email string, event complaint.ComplaintStatusChangedEvent, resolutionNoteHTML string) error
	SendSLAWarning(ctx context.Context, email string, event complaint.SLAWarningEvent) error
	SendSLABreach(ctx context.Context, email string, event complaint.SLABreachedEvent) error
}
