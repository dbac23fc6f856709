package models

type EscalationModel struct {
	ID            uint   `gorm:"primaryKey"`
	ComplaintID   uint   `gorm:"not null;index;uniqueIndex:idx_escalations_unresolved,priority:1"`
	TrackingID    string `gorm:"size:20;not null;index"`
	Reason        string `gorm:"size:20;not null;index"`
	EscalatedFrom string `gorm:"size:100"`
	EscalatedTo   string `gorm:"size:100;not null"`
	EscalatedBy   uint   `gorm:"not null;index"`
	Notes         string `gorm:"type:text"`
	// Active is true for an unresolved escalation and NULL once resolved.
	// The composite unique index on (complaint_id, active) lets MySQL keep at
	// most one unresolved row per complaint while allowing any number of
	// resolved ones, since NULLs never collide in a unique index.
	Active      *bool `gorm:"uniqueIndex:idx_escalations_unresolved,priority:2"`
	EscalatedAt int64 `gorm:"not null;index"`
	ResolvedAt  *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (EscalationModel) TableName() string {
	return "escalations"
}
