package dto

import (
	"time"

	"jannivaran/internal/domain/complaint"
	"jannivaran/internal/domain/sla"
)

// SLADTO carries the derived SLA state of a complaint. Remaining hours are
// clamped for display; the status reflects the unclamped evaluation.
type SLADTO struct {
	AssignedHours    float64   `json:"assigned_hours"`
	Deadline         time.Time `json:"deadline"`
	RemainingHours   float64   `json:"remaining_hours"`
	RemainingDisplay string    `json:"remaining_display"`
	Status           string    `json:"status"`
	Progress         float64   `json:"progress"`
}

type ComplaintDTO struct {
	ID             uint       `json:"id"`
	TrackingID     string     `json:"tracking_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	Department     string     `json:"department"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	Location       string     `json:"location,omitempty"`
	CitizenID      uint       `json:"citizen_id"`
	AssigneeID     *uint      `json:"assignee_id,omitempty"`
	SLA            SLADTO     `json:"sla"`
	ResolutionNote string     `json:"resolution_note,omitempty"`
	AssignedAt     *time.Time `json:"assigned_at,omitempty"`
	InProgressAt   *time.Time `json:"in_progress_at,omitempty"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
	EscalatedAt    *time.Time `json:"escalated_at,omitempty"`
	Version        int        `json:"version"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// FromEntity builds the transport representation, evaluating the SLA at now.
func FromEntity(c *complaint.Complaint, now time.Time) ComplaintDTO {
	eval := c.SLAEvaluation(now)

	return ComplaintDTO{
		ID:             c.ID(),
		TrackingID:     c.TrackingID(),
		Title:          c.Title(),
		Description:    c.Description(),
		Category:       c.Category().String(),
		Department:     c.Department(),
		Priority:       c.Priority().String(),
		Status:         c.Status().String(),
		Location:       c.Location(),
		CitizenID:      c.CitizenID(),
		AssigneeID:     c.AssigneeID(),
		SLA: SLADTO{
			AssignedHours:    c.SLAAssignedHours(),
			Deadline:         eval.Deadline,
			RemainingHours:   sla.DisplayRemainingHours(eval.RemainingHours),
			RemainingDisplay: sla.FormatRemaining(eval.RemainingHours),
			Status:           eval.Status.String(),
			Progress:         eval.Progress,
		},
		ResolutionNote: c.ResolutionNote(),
		AssignedAt:     c.AssignedAt(),
		InProgressAt:   c.InProgressAt(),
		ResolvedAt:     c.ResolvedAt(),
		ClosedAt:       c.ClosedAt(),
		EscalatedAt:    c.EscalatedAt(),
		Version:        c.Version(),
		CreatedAt:      c.CreatedAt(),
		UpdatedAt:      c.UpdatedAt(),
	}
}

// FromEntities maps a result page.
func FromEntities(complaints []*complaint.Complaint, now time.Time) []ComplaintDTO {
	out := make([]ComplaintDTO, 0, len(complaints))
	for _, c := range complaints {
		out = append(out, FromEntity(c, now))
	}
	return out
}

// TrackingDTO is the reduced public view served by the tracking endpoint.
type TrackingDTO struct {
	TrackingID string    `json:"tracking_id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	Department string    `json:"department"`
	Status     string    `json:"status"`
	SLA        SLADTO    `json:"sla"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TrackingFromEntity builds the public tracking view.
func TrackingFromEntity(c *complaint.Complaint, now time.Time) TrackingDTO {
	full := FromEntity(c, now)
	return TrackingDTO{
		TrackingID: full.TrackingID,
		Title:      full.Title,
		Category:   full.Category,
		Department: full.Department,
		Status:     full.Status,
		SLA:        full.SLA,
		CreatedAt:  full.CreatedAt,
		UpdatedAt:  full.UpdatedAt,
	}
}
