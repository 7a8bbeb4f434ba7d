package application

import (
	"errors"

	"github.com/delvaty/construccion-easy/internal/domain/ticket"
	"github.com/delvaty/construccion-easy/internal/realtime"
	"github.com/delvaty/construccion-easy/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTicketNotFound = errors.New("ticket not found")
	ErrTicketClosed   = errors.New("ticket is closed")
)

type TicketService struct {
	Repos *repository.Repos
	Feed  realtime.Publisher
}

func NewTicketService(repos *repository.Repos, feed realtime.Publisher) *TicketService {
	return &TicketService{Repos: repos, Feed: feed}
}

func (s *TicketService) CreateTicket(userID uint, input ticket.CreateTicketInput) (ticket.Ticket, error) {
	t := ticket.Ticket{
		UserID:      userID,
		ClientID:    input.ClientID,
		Subject:     input.Subject,
		Description: input.Description,
		Category:    input.Category,
		Status:      ticket.TicketStatusOpen,
	}
	return t, s.Repos.Ticket.CreateTicket(&t)
}

func (s *TicketService) GetAllTickets() ([]ticket.Ticket, error) {
	return s.Repos.Ticket.FindAll()
}

func (s *TicketService) GetUserTickets(userID uint) ([]ticket.Ticket, error) {
	return s.Repos.Ticket.FindByUserID(userID)
}

func (s *TicketService) GetTicket(id uint) (ticket.Ticket, error) {
	t, err := s.Repos.Ticket.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ticket.Ticket{}, ErrTicketNotFound
	}
	return t, err
}

func (s *TicketService) UpdateTicketStatus(id uint, status string) (ticket.Ticket, error) {
	t, err := s.GetTicket(id)
	if err != nil {
		return ticket.Ticket{}, err
	}
	t.Status = ticket.TicketStatus(status)
	return t, s.Repos.Ticket.SaveTicket(&t)
}

// AddMessage posts to the ticket thread and notifies the other side.
func (s *TicketService) AddMessage(ticketID, userID uint, content string) (ticket.TicketMessage, error) {
	t, err := s.GetTicket(ticketID)
	if err != nil {
		return ticket.TicketMessage{}, err
	}
	if t.Status == ticket.TicketStatusClosed {
		return ticket.TicketMessage{}, ErrTicketClosed
	}

	msg := ticket.TicketMessage{TicketID: t.ID, UserID: userID, Content: content}
	if err := s.Repos.Ticket.CreateMessage(&msg); err != nil {
		return ticket.TicketMessage{}, err
	}

	s.Feed.Publish(realtime.Event{
		Type:    realtime.EventTicketMessage,
		UserID:  t.UserID,
		Payload: msg,
	})
	return msg, nil
}

func (s *TicketService) ListMessages(ticketID uint) ([]ticket.TicketMessage, error) {
	return s.Repos.Ticket.ListMessages(ticketID)
}
