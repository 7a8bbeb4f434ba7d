package ticket

type CreateTicketInput struct {
	ClientID    *uint  `json:"client_id"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category"`
}

type UpdateTicketStatusInput struct {
	Status string `json:"status" binding:"required,oneof=Open InProgress Resolved Closed"`
}

type CreateTicketMessageInput struct {
	Content string `json:"content" binding:"required"`
}
