package document

import "gorm.io/gorm"

type Kind string

const (
	KindPassport  Kind = "passport"
	KindSecondary Kind = "secondary"
	KindOther     Kind = "other"
)

type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

// Document references an object stored in the bucket and the client owning it.
type Document struct {
	gorm.Model
	ClientID    uint         `json:"client_id" gorm:"index;not null"`
	Kind        Kind         `json:"kind" gorm:"size:20;not null"`
	FileName    string       `json:"file_name" gorm:"size:200"`
	ObjectKey   string       `json:"object_key" gorm:"size:300;not null"`
	ContentType string       `json:"content_type" gorm:"size:100"`
	SizeBytes   int64        `json:"size_bytes"`
	Status      ReviewStatus `json:"status" gorm:"size:20;default:'pending'"`
	ReviewNote  string       `json:"review_note" gorm:"type:text"`
	ReviewedBy  *uint        `json:"reviewed_by"`
}
