package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/delvaty/construccion-easy/internal/domain/document"
	"github.com/delvaty/construccion-easy/internal/realtime"
	"github.com/delvaty/construccion-easy/internal/repository"
	"github.com/delvaty/construccion-easy/internal/storage"
	"github.com/delvaty/construccion-easy/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

// DownloadURLExpiry bounds how long a presigned link stays valid.
const DownloadURLExpiry = 15 * time.Minute

type DocumentService struct {
	Repos *repository.Repos
	Store storage.ObjectStore
	Feed  realtime.Publisher
}

func NewDocumentService(repos *repository.Repos, store storage.ObjectStore, feed realtime.Publisher) *DocumentService {
	return &DocumentService{Repos: repos, Store: store, Feed: feed}
}

func (s *DocumentService) ListClientDocuments(clientID uint) ([]document.Document, error) {
	return s.Repos.Document.ListDocumentsByClientID(clientID)
}

func (s *DocumentService) GetDocument(id uint) (document.Document, error) {
	d, err := s.Repos.Document.GetDocumentByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return document.Document{}, ErrDocumentNotFound
	}
	return d, err
}

// Upload stores an additional document for an existing client (dashboard
// uploads outside the intake flow).
func (s *DocumentService) Upload(ctx context.Context, clientID uint, kind document.Kind, f FileUpload) (document.Document, error) {
	key := fmt.Sprintf("clients/%d/%s-%s", clientID, kind, uuid.New().String())
	storedKey, err := s.Store.Upload(ctx, key, f.Content, f.Size, f.ContentType)
	if err != nil {
		return document.Document{}, err
	}

	doc := document.Document{
		ClientID:    clientID,
		Kind:        kind,
		FileName:    f.FileName,
		ObjectKey:   storedKey,
		ContentType: f.ContentType,
		SizeBytes:   f.Size,
		Status:      document.StatusPending,
	}
	if err := s.Repos.Document.CreateDocument(&doc); err != nil {
		return document.Document{}, err
	}
	return doc, nil
}

// DownloadURL hands out a time-limited presigned link to the stored object.
func (s *DocumentService) DownloadURL(ctx context.Context, id uint) (string, error) {
	doc, err := s.GetDocument(id)
	if err != nil {
		return "", err
	}
	return s.Store.PresignedGetURL(ctx, doc.ObjectKey, DownloadURLExpiry)
}

// Review approves or rejects a document and notifies the owning user.
func (s *DocumentService) Review(id, reviewerID uint, input document.ReviewInput) (document.Document, error) {
	doc, err := s.GetDocument(id)
	if err != nil {
		return document.Document{}, err
	}

	before := doc
	doc.Status = document.ReviewStatus(input.Status)
	doc.ReviewNote = input.Note
	doc.ReviewedBy = &reviewerID
	if err := s.Repos.Document.SaveDocument(&doc); err != nil {
		return document.Document{}, err
	}

	owner, err := s.Repos.Client.GetClientByID(doc.ClientID)
	if err == nil {
		s.Feed.Publish(realtime.Event{
			Type:    realtime.EventDocumentReviewed,
			UserID:  owner.UserID,
			Payload: doc,
		})
	}
	utils.LogAudit(reviewerID, "document.review", "document", fmt.Sprint(doc.ID),
		before, doc, "document reviewed", s.Repos.Audit)
	return doc, nil
}
