package payment

import "time"

type CreatePaymentInput struct {
	ClientID    uint       `json:"client_id" binding:"required"`
	Concept     string     `json:"concept" binding:"required"`
	AmountCents int64      `json:"amount_cents" binding:"required,gt=0"`
	Currency    string     `json:"currency" binding:"omitempty,len=3"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdatePaymentInput struct {
	Concept     *string    `json:"concept"`
	AmountCents *int64     `json:"amount_cents" binding:"omitempty,gt=0"`
	DueDate     *time.Time `json:"due_date"`
	Status      *string    `json:"status" binding:"omitempty,oneof=pending paid overdue"`
}

type MarkPaidInput struct {
	Method    string `json:"method" binding:"required"`
	Reference string `json:"reference"`
}
