package ticket

import (
	"time"

	"github.com/delvaty/construccion-easy/internal/domain/user"
	"gorm.io/gorm"
)

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "Open"
	TicketStatusInProgress TicketStatus = "InProgress"
	TicketStatusResolved   TicketStatus = "Resolved"
	TicketStatusClosed     TicketStatus = "Closed"
)

type Ticket struct {
	gorm.Model
	UserID      uint            `json:"user_id"`
	ClientID    *uint           `json:"client_id"` // Optional
	Subject     string          `json:"subject"`
	Description string          `json:"description"`
	Category    string          `json:"category"` // Single-select category configured by backend
	Status      TicketStatus    `json:"status" gorm:"default:'Open'"`
	User        user.User       `json:"user" gorm:"foreignKey:UserID"`
	Messages    []TicketMessage `json:"messages" gorm:"foreignKey:TicketID"`
}

// TicketMessage represents a comment on a ticket. Both admin and requester can post.
type TicketMessage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	TicketID  uint   `json:"ticket_id" gorm:"index"`
	UserID    uint   `json:"user_id"`
	Content   string `json:"content" gorm:"type:text"`
	CreatedAt time.Time
}
