package payment

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Payment is one installment owed by a client. Amounts are integer cents to
// avoid float drift.
type Payment struct {
	gorm.Model
	ClientID    uint       `json:"client_id" gorm:"index;not null"`
	Concept     string     `json:"concept" gorm:"size:150;not null"`
	AmountCents int64      `json:"amount_cents" gorm:"not null"`
	Currency    string     `json:"currency" gorm:"size:3;default:'EUR'"`
	DueDate     *time.Time `json:"due_date"`
	Status      Status     `json:"status" gorm:"size:20;default:'pending'"`
	Method      string     `json:"method" gorm:"size:40"`
	Reference   string     `json:"reference" gorm:"size:100"`
	PaidAt      *time.Time `json:"paid_at"`
}
