package repository

import (
	"github.com/delvaty/construccion-easy/internal/domain/ticket"
	"gorm.io/gorm"
)

type TicketRepo interface {
	CreateTicket(t *ticket.Ticket) error
	CreateMessage(msg *ticket.TicketMessage) error
	FindAll() ([]ticket.Ticket, error)
	FindByUserID(userID uint) ([]ticket.Ticket, error)
	FindByID(id uint) (ticket.Ticket, error)
	SaveTicket(t *ticket.Ticket) error
	ListMessages(ticketID uint) ([]ticket.TicketMessage, error)
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	return &DBTicketRepo{db: tx}
}

func (r *DBTicketRepo) CreateTicket(t *ticket.Ticket) error {
	return r.db.Create(t).Error
}

func (r *DBTicketRepo) CreateMessage(msg *ticket.TicketMessage) error {
	return r.db.Create(msg).Error
}

func (r *DBTicketRepo) FindAll() ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Preload("User").Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) FindByUserID(userID uint) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.Where("user_id = ?", userID).Preload("User").Order("created_at desc").Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) FindByID(id uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Preload("User").Preload("Messages").First(&t, id).Error
	return t, err
}

func (r *DBTicketRepo) SaveTicket(t *ticket.Ticket) error {
	return r.db.Save(t).Error
}

func (r *DBTicketRepo) ListMessages(ticketID uint) ([]ticket.TicketMessage, error) {
	var msgs []ticket.TicketMessage
	err := r.db.Where("ticket_id = ?", ticketID).Order("created_at asc").Find(&msgs).Error
	return msgs, err
}
