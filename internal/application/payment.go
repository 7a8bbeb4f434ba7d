package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/delvaty/construccion-easy/internal/domain/payment"
	"github.com/delvaty/construccion-easy/internal/realtime"
	"github.com/delvaty/construccion-easy/internal/repository"
	"github.com/delvaty/construccion-easy/pkg/utils"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrPaymentAlreadyPaid = errors.New("payment is already marked as paid")
)

type PaymentService struct {
	Repos *repository.Repos
	Feed  realtime.Publisher
}

func NewPaymentService(repos *repository.Repos, feed realtime.Publisher) *PaymentService {
	return &PaymentService{Repos: repos, Feed: feed}
}

func (s *PaymentService) CreatePayment(input payment.CreatePaymentInput) (payment.Payment, error) {
	if _, err := s.Repos.Client.GetClientByID(input.ClientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return payment.Payment{}, ErrClientNotFound
		}
		return payment.Payment{}, err
	}

	p := payment.Payment{
		ClientID:    input.ClientID,
		Concept:     input.Concept,
		AmountCents: input.AmountCents,
		Currency:    input.Currency,
		DueDate:     input.DueDate,
		Status:      payment.StatusPending,
	}
	if p.Currency == "" {
		p.Currency = "EUR"
	}
	if err := s.Repos.Payment.CreatePayment(&p); err != nil {
		return payment.Payment{}, err
	}
	return p, nil
}

func (s *PaymentService) GetPayment(id uint) (payment.Payment, error) {
	p, err := s.Repos.Payment.GetPaymentByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payment.Payment{}, ErrPaymentNotFound
	}
	return p, err
}

func (s *PaymentService) ListPayments(page, limit int) ([]payment.Payment, error) {
	return s.Repos.Payment.ListPayments(page, limit)
}

func (s *PaymentService) ListClientPayments(clientID uint) ([]payment.Payment, error) {
	return s.Repos.Payment.ListPaymentsByClientID(clientID)
}

func (s *PaymentService) UpdatePayment(id uint, input payment.UpdatePaymentInput) (payment.Payment, error) {
	p, err := s.GetPayment(id)
	if err != nil {
		return payment.Payment{}, err
	}

	if input.Concept != nil {
		p.Concept = *input.Concept
	}
	if input.AmountCents != nil {
		p.AmountCents = *input.AmountCents
	}
	if input.DueDate != nil {
		p.DueDate = input.DueDate
	}
	if input.Status != nil {
		p.Status = payment.Status(*input.Status)
	}

	if err := s.Repos.Payment.SavePayment(&p); err != nil {
		return payment.Payment{}, err
	}
	s.publishUpdate(p)
	return p, nil
}

// MarkPaid settles a pending installment.
func (s *PaymentService) MarkPaid(id, adminID uint, input payment.MarkPaidInput) (payment.Payment, error) {
	p, err := s.GetPayment(id)
	if err != nil {
		return payment.Payment{}, err
	}
	if p.Status == payment.StatusPaid {
		return payment.Payment{}, ErrPaymentAlreadyPaid
	}

	now := time.Now()
	before := p
	p.Status = payment.StatusPaid
	p.Method = input.Method
	p.Reference = input.Reference
	p.PaidAt = &now
	if err := s.Repos.Payment.SavePayment(&p); err != nil {
		return payment.Payment{}, err
	}

	s.publishUpdate(p)
	utils.LogAudit(adminID, "payment.paid", "payment", fmt.Sprint(p.ID),
		before, p, "payment marked paid", s.Repos.Audit)
	return p, nil
}

// SweepOverdue flips pending payments past their due date to overdue.
func (s *PaymentService) SweepOverdue() (int64, error) {
	return s.Repos.Payment.MarkOverduePayments(time.Now())
}

func (s *PaymentService) RemovePayment(id uint) error {
	if _, err := s.GetPayment(id); err != nil {
		return err
	}
	return s.Repos.Payment.DeletePayment(id)
}

func (s *PaymentService) publishUpdate(p payment.Payment) {
	owner, err := s.Repos.Client.GetClientByID(p.ClientID)
	if err != nil {
		return
	}
	s.Feed.Publish(realtime.Event{
		Type:    realtime.EventPaymentUpdated,
		UserID:  owner.UserID,
		Payload: p,
	})
}
