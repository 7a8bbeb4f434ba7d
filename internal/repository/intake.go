package repository

import (
	"github.com/delvaty/construccion-easy/internal/domain/intake"
	"gorm.io/gorm"
)

type IntakeRepo interface {
	CreateSession(s *intake.Session) error
	GetSessionByID(id uint) (intake.Session, error)
	// GetOpenSessionByUserID finds a session the user can still edit
	// (anything not yet submitted).
	GetOpenSessionByUserID(userID uint) (intake.Session, error)
	SaveSession(s *intake.Session) error
	WithTx(tx *gorm.DB) IntakeRepo
}

type DBIntakeRepo struct {
	db *gorm.DB
}

func NewIntakeRepo(db *gorm.DB) *DBIntakeRepo {
	return &DBIntakeRepo{db: db}
}

func (r *DBIntakeRepo) WithTx(tx *gorm.DB) IntakeRepo {
	return &DBIntakeRepo{db: tx}
}

func (r *DBIntakeRepo) CreateSession(s *intake.Session) error {
	return r.db.Create(s).Error
}

func (r *DBIntakeRepo) GetSessionByID(id uint) (intake.Session, error) {
	var s intake.Session
	err := r.db.First(&s, id).Error
	return s, err
}

func (r *DBIntakeRepo) GetOpenSessionByUserID(userID uint) (intake.Session, error) {
	var s intake.Session
	err := r.db.
		Where("user_id = ? AND state NOT IN ?", userID, []intake.SessionState{intake.SessionStateSubmitted}).
		Order("created_at desc").
		First(&s).Error
	return s, err
}

func (r *DBIntakeRepo) SaveSession(s *intake.Session) error {
	return r.db.Save(s).Error
}
