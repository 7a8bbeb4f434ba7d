package repository

import (
	"time"

	"github.com/delvaty/construccion-easy/internal/domain/payment"
	"gorm.io/gorm"
)

type PaymentRepo interface {
	CreatePayment(p *payment.Payment) error
	GetPaymentByID(id uint) (payment.Payment, error)
	ListPaymentsByClientID(clientID uint) ([]payment.Payment, error)
	ListPayments(page, limit int) ([]payment.Payment, error)
	SavePayment(p *payment.Payment) error
	DeletePayment(id uint) error
	MarkOverduePayments(now time.Time) (int64, error)
	WithTx(tx *gorm.DB) PaymentRepo
}

type DBPaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *DBPaymentRepo {
	return &DBPaymentRepo{db: db}
}

func (r *DBPaymentRepo) WithTx(tx *gorm.DB) PaymentRepo {
	return &DBPaymentRepo{db: tx}
}

func (r *DBPaymentRepo) CreatePayment(p *payment.Payment) error {
	return r.db.Create(p).Error
}

func (r *DBPaymentRepo) GetPaymentByID(id uint) (payment.Payment, error) {
	var p payment.Payment
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBPaymentRepo) ListPaymentsByClientID(clientID uint) ([]payment.Payment, error) {
	var ps []payment.Payment
	err := r.db.Where("client_id = ?", clientID).Order("due_date asc").Find(&ps).Error
	return ps, err
}

func (r *DBPaymentRepo) ListPayments(page, limit int) ([]payment.Payment, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}
	var ps []payment.Payment
	err := r.db.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&ps).Error
	return ps, err
}

func (r *DBPaymentRepo) SavePayment(p *payment.Payment) error {
	return r.db.Save(p).Error
}

func (r *DBPaymentRepo) DeletePayment(id uint) error {
	return r.db.Delete(&payment.Payment{}, id).Error
}

func (r *DBPaymentRepo) MarkOverduePayments(now time.Time) (int64, error) {
	res := r.db.Model(&payment.Payment{}).
		Where("status = ? AND due_date IS NOT NULL AND due_date < ?", payment.StatusPending, now).
		Update("status", payment.StatusOverdue)
	return res.RowsAffected, res.Error
}
