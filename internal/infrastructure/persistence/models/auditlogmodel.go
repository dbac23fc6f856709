package models

import "gorm.io/datatypes"

type AuditLogModel struct {
	ID          uint           `gorm:"primaryKey"`
	ComplaintID uint           `gorm:"not null;index"`
	Action      string         `gorm:"size:50;not null;index"`
	ActorID     uint           `gorm:"not null;index"`
	ActorName   string         `gorm:"size:100"`
	ActorRole   string         `gorm:"size:20"`
	OldValues   datatypes.JSON `gorm:"type:json"`
	NewValues   datatypes.JSON `gorm:"type:json"`
	Metadata    datatypes.JSON `gorm:"type:json"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
