package repository

import (
	"github.com/delvaty/construccion-easy/internal/domain/document"
	"gorm.io/gorm"
)

type DocumentRepo interface {
	CreateDocument(d *document.Document) error
	GetDocumentByID(id uint) (document.Document, error)
	ListDocumentsByClientID(clientID uint) ([]document.Document, error)
	SaveDocument(d *document.Document) error
	DeleteDocument(id uint) error
	WithTx(tx *gorm.DB) DocumentRepo
}

type DBDocumentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) *DBDocumentRepo {
	return &DBDocumentRepo{db: db}
}

func (r *DBDocumentRepo) WithTx(tx *gorm.DB) DocumentRepo {
	return &DBDocumentRepo{db: tx}
}

func (r *DBDocumentRepo) CreateDocument(d *document.Document) error {
	return r.db.Create(d).Error
}

func (r *DBDocumentRepo) GetDocumentByID(id uint) (document.Document, error) {
	var d document.Document
	err := r.db.First(&d, id).Error
	return d, err
}

func (r *DBDocumentRepo) ListDocumentsByClientID(clientID uint) ([]document.Document, error) {
	var docs []document.Document
	err := r.db.Where("client_id = ?", clientID).Order("created_at desc").Find(&docs).Error
	return docs, err
}

func (r *DBDocumentRepo) SaveDocument(d *document.Document) error {
	return r.db.Save(d).Error
}

func (r *DBDocumentRepo) DeleteDocument(id uint) error {
	return r.db.Delete(&document.Document{}, id).Error
}
