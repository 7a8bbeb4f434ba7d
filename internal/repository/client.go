package repository

import (
	"github.com/delvaty/construccion-easy/internal/domain/client"
	"gorm.io/gorm"
)

type ClientRepo interface {
	CreateClient(c *client.Client) error
	GetClientByID(id uint) (client.Client, error)
	GetClientsByUserID(userID uint) ([]client.Client, error)
	ListClients(page, limit int) ([]client.Client, error)
	SaveClient(c *client.Client) error
	DeleteClient(id uint) error

	// HasCompletedClient feeds the duplicate-submission guard.
	HasCompletedClient(userID uint) (bool, error)

	CreateNewProcessDetail(d *client.NewProcessDetail) error
	CreateOngoingProcessDetail(d *client.OngoingProcessDetail) error
	GetNewProcessDetail(clientID uint) (client.NewProcessDetail, error)
	GetOngoingProcessDetail(clientID uint) (client.OngoingProcessDetail, error)

	BulkInsertTattoos(rows []client.Tattoo) error
	BulkInsertTravels(rows []client.Travel) error
	BulkInsertRelatives(rows []client.Relative) error
	ListTattoos(clientID uint) ([]client.Tattoo, error)
	ListTravels(clientID uint) ([]client.Travel, error)
	ListRelatives(clientID uint) ([]client.Relative, error)

	WithTx(tx *gorm.DB) ClientRepo
}

type DBClientRepo struct {
	db *gorm.DB
}

func NewClientRepo(db *gorm.DB) *DBClientRepo {
	return &DBClientRepo{db: db}
}

func (r *DBClientRepo) WithTx(tx *gorm.DB) ClientRepo {
	return &DBClientRepo{db: tx}
}

func (r *DBClientRepo) CreateClient(c *client.Client) error {
	return r.db.Create(c).Error
}

func (r *DBClientRepo) GetClientByID(id uint) (client.Client, error) {
	var c client.Client
	err := r.db.First(&c, id).Error
	return c, err
}

func (r *DBClientRepo) GetClientsByUserID(userID uint) ([]client.Client, error) {
	var cs []client.Client
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&cs).Error
	return cs, err
}

func (r *DBClientRepo) ListClients(page, limit int) ([]client.Client, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}
	var cs []client.Client
	err := r.db.Order("created_at desc").Offset((page - 1) * limit).Limit(limit).Find(&cs).Error
	return cs, err
}

func (r *DBClientRepo) SaveClient(c *client.Client) error {
	return r.db.Save(c).Error
}

func (r *DBClientRepo) DeleteClient(id uint) error {
	return r.db.Delete(&client.Client{}, id).Error
}

func (r *DBClientRepo) HasCompletedClient(userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&client.Client{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

func (r *DBClientRepo) CreateNewProcessDetail(d *client.NewProcessDetail) error {
	return r.db.Create(d).Error
}

func (r *DBClientRepo) CreateOngoingProcessDetail(d *client.OngoingProcessDetail) error {
	return r.db.Create(d).Error
}

func (r *DBClientRepo) GetNewProcessDetail(clientID uint) (client.NewProcessDetail, error) {
	var d client.NewProcessDetail
	err := r.db.Where("client_id = ?", clientID).First(&d).Error
	return d, err
}

func (r *DBClientRepo) GetOngoingProcessDetail(clientID uint) (client.OngoingProcessDetail, error) {
	var d client.OngoingProcessDetail
	err := r.db.Where("client_id = ?", clientID).First(&d).Error
	return d, err
}

func (r *DBClientRepo) BulkInsertTattoos(rows []client.Tattoo) error {
	return r.db.Create(&rows).Error
}

func (r *DBClientRepo) BulkInsertTravels(rows []client.Travel) error {
	return r.db.Create(&rows).Error
}

func (r *DBClientRepo) BulkInsertRelatives(rows []client.Relative) error {
	return r.db.Create(&rows).Error
}

func (r *DBClientRepo) ListTattoos(clientID uint) ([]client.Tattoo, error) {
	var rows []client.Tattoo
	err := r.db.Where("client_id = ?", clientID).Find(&rows).Error
	return rows, err
}

func (r *DBClientRepo) ListTravels(clientID uint) ([]client.Travel, error) {
	var rows []client.Travel
	err := r.db.Where("client_id = ?", clientID).Find(&rows).Error
	return rows, err
}

func (r *DBClientRepo) ListRelatives(clientID uint) ([]client.Relative, error) {
	var rows []client.Relative
	err := r.db.Where("client_id = ?", clientID).Find(&rows).Error
	return rows, err
}
