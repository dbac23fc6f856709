// Package audit records every state-changing action on a complaint.
// Entries are append-only; nothing here updates or deletes them.
package audit

import (
	"fmt"
	"time"
)

type Action string

const (
	ActionComplaintFiled     Action = "complaint.filed"
	ActionStatusChanged      Action = "complaint.status_changed"
	ActionPriorityChanged    Action = "complaint.priority_changed"
	ActionAssigned           Action = "complaint.assigned"
	ActionEscalated          Action = "complaint.escalated"
	ActionEscalationResolved Action = "escalation.resolved"
	ActionTicketRaised       Action = "complaint.ticket_raised"
	ActionDeleted            Action = "complaint.deleted"
)

// Actor identifies who performed the audited action.
type Actor struct {
	ID   uint
	Name string
	Role string
}

// SystemActor is used for entries written by the SLA sweep.
var SystemActor = Actor{ID: 0, Name: "system", Role: "system"}

type Entry struct {
	id          uint
	complaintID uint
	action      Action
	actor       Actor
	oldValues   map[string]interface{}
	newValues   map[string]interface{}
	metadata    map[string]interface{}
	createdAt   time.Time
}

func NewEntry(
	complaintID uint,
	action Action,
	actor Actor,
	oldValues map[string]interface{},
	newValues map[string]interface{},
	metadata map[string]interface{},
) (*Entry, error) {
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}

	return &Entry{
		complaintID: complaintID,
		action:      action,
		actor:       actor,
		oldValues:   oldValues,
		newValues:   newValues,
		metadata:    metadata,
		createdAt:   time.Now().UTC(),
	}, nil
}

func ReconstructEntry(
	id uint,
	complaintID uint,
	action Action,
	actor Actor,
	oldValues map[string]interface{},
	newValues map[string]interface{},
	metadata map[string]interface{},
	createdAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if complaintID == 0 {
		return nil, fmt.Errorf("complaint ID is required")
	}

	return &Entry{
		id:          id,
		complaintID: complaintID,
		action:      action,
		actor:       actor,
		oldValues:   oldValues,
		newValues:   newValues,
		metadata:    metadata,
		createdAt:   createdAt,
	}, nil
}

func (e *Entry) ID() uint             { return e.id }
func (e *Entry) ComplaintID() uint    { return e.complaintID }
func (e *Entry) Action() Action       { return e.action }
func (e *Entry) Actor() Actor         { return e.actor }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

func (e *Entry) OldValues() map[string]interface{} {
	return copyValues(e.oldValues)
}

func (e *Entry) NewValues() map[string]interface{} {
	return copyValues(e.newValues)
}

func (e *Entry) Metadata() map[string]interface{} {
	return copyValues(e.metadata)
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}

func copyValues(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
