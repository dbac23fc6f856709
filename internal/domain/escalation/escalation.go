// Package escalation models the promotion of a breached or stuck complaint
// to a higher authority tier.
package escalation

import (
	"fmt"
	"time"
)

type Reason string

const (
	ReasonSLABreach Reason = "sla-breach"
	ReasonManual    Reason = "manual"
	ReasonPriority  Reason = "priority"
)

var validReasons = map[Reason]bool{
	ReasonSLABreach: true,
	ReasonManual:    true,
	ReasonPriority:  true,
}

func (r Reason) String() string {
	return string(r)
}

func (r Reason) IsValid() bool {
	return validReasons[r]
}

func NewReason(s string) (Reason, error) {
	r := Reason(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid escalation reason: %s", s)
	}
	return r, nil
}

// DefaultAuthority is the tier complaints are promoted to.
const DefaultAuthority = "Higher Authority"

// SystemActorID marks escalations created by the sweep rather than a user.
const SystemActorID uint = 0

type Escalation struct {
	id            uint
	complaintID   uint
	trackingID    string
	reason        Reason
	escalatedFrom string
	escalatedTo   string
	escalatedBy   uint
	notes         string
	resolved      bool
	escalatedAt   time.Time
	resolvedAt    *time.Time
}

func NewEscalation(
	complaintID uint,
	trackingID string,
	reason Reason,
	escalatedFrom string,
	escalatedBy uint,
	notes string,
) (*Escalation, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if len(trackingID) == 0 {
		return nil, fmt.Errorf("tracking ID is required")
	}
	if !reason.IsValid() {
		return nil, fmt.Errorf("invalid escalation reason: %s", reason)
	}
	if len(notes) > 2000 {
		return nil, fmt.Errorf("notes exceed maximum length of 2000 characters")
	}

	return &Escalation{
		complaintID:   complaintID,
		trackingID:    trackingID,
		reason:        reason,
		escalatedFrom: escalatedFrom,
		escalatedTo:   DefaultAuthority,
		escalatedBy:   escalatedBy,
		notes:         notes,
		resolved:      false,
		escalatedAt:   time.Now().UTC(),
	}, nil
}

func ReconstructEscalation(
	id uint,
	complaintID uint,
	trackingID string,
	reason Reason,
	escalatedFrom string,
	escalatedTo string,
	escalatedBy uint,
	notes string,
	resolved bool,
	escalatedAt time.Time,
	resolvedAt *time.Time,
) (*Escalation, error) {
	if id == 0 {
		return nil, fmt.Errorf("escalation ID cannot be zero")
	}
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if !reason.IsValid() {
		return nil, fmt.Errorf("invalid escalation reason: %s", reason)
	}

	return &Escalation{
		id:            id,
		complaintID:   complaintID,
		trackingID:    trackingID,
		reason:        reason,
		escalatedFrom: escalatedFrom,
		escalatedTo:   escalatedTo,
		escalatedBy:   escalatedBy,
		notes:         notes,
		resolved:      resolved,
		escalatedAt:   escalatedAt,
		resolvedAt:    resolvedAt,
	}, nil
}

func (e *Escalation) ID() uint               { return e.id }
func (e *Escalation) ComplaintID() uint      { return e.complaintID }
func (e *Escalation) TrackingID() string     { return e.trackingID }
func (e *Escalation) Reason() Reason         { return e.reason }
func (e *Escalation) EscalatedFrom() string  { return e.escalatedFrom }
func (e *Escalation) EscalatedTo() string    { return e.escalatedTo }
func (e *Escalation) EscalatedBy() uint      { return e.escalatedBy }
func (e *Escalation) Notes() string          { return e.notes }
func (e *Escalation) IsResolved() bool       { return e.resolved }
func (e *Escalation) EscalatedAt() time.Time { return e.escalatedAt }
func (e *Escalation) ResolvedAt() *time.Time { return e.resolvedAt }

// IsSystemGenerated reports whether the sweep created this escalation.
func (e *Escalation) IsSystemGenerated() bool {
	return e.escalatedBy == SystemActorID
}

func (e *Escalation) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("escalation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("escalation ID cannot be zero")
	}
	e.id = id
	return nil
}

// Resolve marks the escalation handled. Complaint status is never rolled
// back here; that stays with the complaint lifecycle.
func (e *Escalation) Resolve(notes string) error {
	if e.resolved {
		return fmt.Errorf("escalation is already resolved")
	}

	now := time.Now().UTC()
	e.resolved = true
	e.resolvedAt = &now
	if len(notes) > 0 {
		if len(e.notes) > 0 {
			e.notes = e.notes + "\n" + notes
		} else {
			e.notes = notes
		}
	}
	return nil
}
