package dto

import (
	"time"

	"jannivaran/internal/domain/escalation"
)

type EscalationDTO struct {
	ID            uint       `json:"id"`
	ComplaintID   uint       `json:"complaint_id"`
	TrackingID    string     `json:"tracking_id"`
	Reason        string     `json:"reason"`
	EscalatedFrom string     `json:"escalated_from,omitempty"`
	EscalatedTo   string     `json:"escalated_to"`
	EscalatedBy   uint       `json:"escalated_by"`
	System        bool       `json:"system"`
	Notes         string     `json:"notes,omitempty"`
	Resolved      bool       `json:"resolved"`
	EscalatedAt   time.Time  `json:"escalated_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

func FromEntity(e *escalation.Escalation) EscalationDTO {
	return EscalationDTO{
		ID:            e.ID(),
		ComplaintID:   e.ComplaintID(),
		TrackingID:    e.TrackingID(),
		Reason:        e.Reason().String(),
		EscalatedFrom: e.EscalatedFrom(),
		EscalatedTo:   e.EscalatedTo(),
		EscalatedBy:   e.EscalatedBy(),
		System:        e.IsSystemGenerated(),
		Notes:         e.Notes(),
		Resolved:      e.IsResolved(),
		EscalatedAt:   e.EscalatedAt(),
		ResolvedAt:    e.ResolvedAt(),
	}
}

func FromEntities(escalations []*escalation.Escalation) []EscalationDTO {
	out := make([]EscalationDTO, 0, len(escalations))
	for _, e := range escalations {
		out = append(out, FromEntity(e))
	}
	return out
}
