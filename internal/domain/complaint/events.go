package complaint

import (
	"time"
)

type ComplaintFiledEvent struct {
	ComplaintID uint
	TrackingID  string
	Title       string
	CitizenID   uint
	Priority    string
	Category    string
	Department  string
	Timestamp   time.Time
}

func NewComplaintFiledEvent(
	complaintID uint,
	trackingID string,
	title string,
	citizenID uint,
	priority string,
	category string,
	department string,
	timestamp time.Time,
) ComplaintFiledEvent {
	return ComplaintFiledEvent{
		ComplaintID: complaintID,
		TrackingID:  trackingID,
		Title:       title,
		CitizenID:   citizenID,
		Priority:    priority,
		Category:    category,
		Department:  department,
		Timestamp:   timestamp,
	}
}

type ComplaintStatusChangedEvent struct {
	ComplaintID uint
	TrackingID  string
	OldStatus   string
	NewStatus   string
	ChangedBy   uint
	Timestamp   time.Time
}

func NewComplaintStatusChangedEvent(
	complaintID uint,
	trackingID string,
	oldStatus string,
	newStatus string,
	changedBy uint,
	timestamp time.Time,
) ComplaintStatusChangedEvent {
	return ComplaintStatusChangedEvent{
		ComplaintID: complaintID,
		TrackingID:  trackingID,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		ChangedBy:   changedBy,
		Timestamp:   timestamp,
	}
}

type ComplaintPriorityChangedEvent struct {
	ComplaintID uint
	TrackingID  string
	OldPriority string
	NewPriority string
	ChangedBy   uint
	Timestamp   time.Time
}

func NewComplaintPriorityChangedEvent(
	complaintID uint,
	trackingID string,
	oldPriority string,
	newPriority string,
	changedBy uint,
	timestamp time.Time,
) ComplaintPriorityChangedEvent {
	return ComplaintPriorityChangedEvent{
		ComplaintID: complaintID,
		TrackingID:  trackingID,
		OldPriority: oldPriority,
		NewPriority: newPriority,
		ChangedBy:   changedBy,
		Timestamp:   timestamp,
	}
}

type ComplaintAssignedEvent struct {
	ComplaintID uint
	TrackingID  string
	AssigneeID  uint
	AssignedBy  uint
	Department  string
	Timestamp   time.Time
}

func NewComplaintAssignedEvent(
	complaintID uint,
	trackingID string,
	assigneeID uint,
	assignedBy uint,
	department string,
	timestamp time.Time,
) ComplaintAssignedEvent {
	return ComplaintAssignedEvent{
		ComplaintID: complaintID,
		TrackingID:  trackingID,
		AssigneeID:  assigneeID,
		AssignedBy:  assignedBy,
		Department:  department,
		Timestamp:   timestamp,
	}
}

type ComplaintEscalatedEvent struct {
	ComplaintID  uint
	TrackingID   string
	EscalationID uint
	Reason       string
	EscalatedTo  string
	Timestamp    time.Time
}

func NewComplaintEscalatedEvent(
	complaintID uint,
	trackingID string,
	escalationID uint,
	reason string,
	escalatedTo string,
	timestamp time.Time,
) ComplaintEscalatedEvent {
	return ComplaintEscalatedEvent{
		ComplaintID:  complaintID,
		TrackingID:   trackingID,
		EscalationID: escalationID,
		Reason:       reason,
		EscalatedTo:  escalatedTo,
		Timestamp:    timestamp,
	}
}

type SLAWarningEvent struct {
	ComplaintID    uint
	TrackingID     string
	RemainingHours float64
	Deadline       time.Time
	Timestamp      time.Time
}

func NewSLAWarningEvent(
	complaintID uint,
	trackingID string,
	remainingHours float64,
	deadline time.Time,
	timestamp time.Time,
) SLAWarningEvent {
	return SLAWarningEvent{
		ComplaintID:    complaintID,
		TrackingID:     trackingID,
		RemainingHours: remainingHours,
		Deadline:       deadline,
		Timestamp:      timestamp,
	}
}

type SLABreachedEvent struct {
	ComplaintID uint
	TrackingID  string
	Deadline    time.Time
	Timestamp   time.Time
}

func NewSLABreachedEvent(
	complaintID uint,
	trackingID string,
	deadline time.Time,
	timestamp time.Time,
) SLABreachedEvent {
	return SLABreachedEvent{
		ComplaintID: complaintID,
		TrackingID:  trackingID,
		Deadline:    deadline,
		Timestamp:   timestamp,
	}
}
