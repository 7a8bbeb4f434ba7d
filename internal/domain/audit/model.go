package audit

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records who changed what. Writes are fire-and-forget; a failed
// audit write never blocks the primary flow.
type AuditLog struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"index"`
	Action       string         `json:"action" gorm:"size:60;index"`
	ResourceType string         `json:"resource_type" gorm:"size:60;index"`
	ResourceID   string         `json:"resource_id" gorm:"size:60"`
	OldData      datatypes.JSON `json:"old_data"`
	NewData      datatypes.JSON `json:"new_data"`
	IPAddress    string         `json:"ip_address" gorm:"size:45"`
	UserAgent    string         `json:"user_agent" gorm:"size:255"`
	Description  string         `json:"description" gorm:"type:text"`
	CreatedAt    time.Time      `json:"created_at" gorm:"index"`
}
