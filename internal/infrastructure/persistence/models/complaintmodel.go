package models

type ComplaintModel struct {
	ID               uint    `gorm:"primaryKey"`
	TrackingID       string  `gorm:"uniqueIndex;size:20;not null"`
	Title            string  `gorm:"size:200;not null"`
	Description      string  `gorm:"type:text;not null"`
	Category         string  `gorm:"size:50;not null;index"`
	Department       string  `gorm:"size:100;not null;index"`
	Priority         string  `gorm:"size:20;not null;index"`
	Status           string  `gorm:"size:20;not null;index"`
	Location         string  `gorm:"size:255"`
	CitizenID        uint    `gorm:"not null;index"`
	AssigneeID       *uint   `gorm:"index"`
	SLAAssignedHours float64 `gorm:"not null"`
	SLADeadline      int64   `gorm:"not null;index"`
	ResolutionNote   string  `gorm:"type:text"`
	AssignedAt       *int64
	InProgressAt     *int64
	ResolvedAt       *int64
	ClosedAt         *int64
	EscalatedAt      *int64
	SLAWarnedAt      *int64
	LastStatusChange int64 `gorm:"not null"`
	Version          int   `gorm:"not null;default:1"`
	CreatedAt        int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt        int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (ComplaintModel) TableName() string {
	return "complaints"
}
