package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User     UserRepo
	Client   ClientRepo
	Intake   IntakeRepo
	Document DocumentRepo
	Payment  PaymentRepo
	Ticket   TicketRepo
	Audit    AuditRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		User:     NewUserRepo(db),
		Client:   NewClientRepo(db),
		Intake:   NewIntakeRepo(db),
		Document: NewDocumentRepo(db),
		Payment:  NewPaymentRepo(db),
		Ticket:   NewTicketRepo(db),
		Audit:    NewAuditRepo(db),
		db:       db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:     r.User.WithTx(tx),
		Client:   r.Client.WithTx(tx),
		Intake:   r.Intake.WithTx(tx),
		Document: r.Document.WithTx(tx),
		Payment:  r.Payment.WithTx(tx),
		Ticket:   r.Ticket.WithTx(tx),
		Audit:    r.Audit.WithTx(tx),
		db:       tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
