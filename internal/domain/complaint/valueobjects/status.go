package valueobjects

import "fmt"

type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in-progress"
	StatusResolved   ComplaintStatus = "resolved"
	StatusClosed     ComplaintStatus = "closed"
	StatusEscalated  ComplaintStatus = "escalated"
)

var validComplaintStatuses = map[ComplaintStatus]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
	StatusEscalated:  true,
}

var complaintStatusTransitions = map[ComplaintStatus][]ComplaintStatus{
	StatusPending: {
		StatusInProgress,
		StatusEscalated,
	},
	StatusInProgress: {
		StatusResolved,
		StatusClosed,
		StatusEscalated,
	},
	StatusEscalated: {
		StatusInProgress,
		StatusResolved,
		StatusClosed,
	},
	StatusResolved: {
		StatusClosed,
	},
	StatusClosed: {},
}

func (cs ComplaintStatus) String() string {
	return string(cs)
}

func (cs ComplaintStatus) IsValid() bool {
	return validComplaintStatuses[cs]
}

func (cs ComplaintStatus) CanTransitionTo(newStatus ComplaintStatus) bool {
	allowedTransitions, ok := complaintStatusTransitions[cs]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (cs ComplaintStatus) IsPending() bool {
	return cs == StatusPending
}

func (cs ComplaintStatus) IsInProgress() bool {
	return cs == StatusInProgress
}

func (cs ComplaintStatus) IsResolved() bool {
	return cs == StatusResolved
}

func (cs ComplaintStatus) IsClosed() bool {
	return cs == StatusClosed
}

func (cs ComplaintStatus) IsEscalated() bool {
	return cs == StatusEscalated
}

// IsTerminal reports whether the status has no outgoing transitions besides close.
func (cs ComplaintStatus) IsTerminal() bool {
	return cs == StatusResolved || cs == StatusClosed
}

// IsActive reports whether the complaint still counts against its SLA window.
func (cs ComplaintStatus) IsActive() bool {
	return cs == StatusPending || cs == StatusInProgress || cs == StatusEscalated
}

func NewComplaintStatus(s string) (ComplaintStatus, error) {
	cs := ComplaintStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid complaint status: %s", s)
	}
	return cs, nil
}
