package handlers

import (
	"errors"
	"net/http"

	"github.com/delvaty/construccion-easy/internal/application"
	"github.com/delvaty/construccion-easy/internal/domain/document"
	"github.com/delvaty/construccion-easy/pkg/response"
	"github.com/delvaty/construccion-easy/pkg/utils"
	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	svc     *application.DocumentService
	clients *application.ClientService
}

func NewDocumentHandler(svc *application.DocumentService, clients *application.ClientService) *DocumentHandler {
	return &DocumentHandler{svc: svc, clients: clients}
}

// ListClientDocuments lists the documents attached to a client record.
func (h *DocumentHandler) ListClientDocuments(c *gin.Context) {
	clientID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	docs, err := h.svc.ListClientDocuments(clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if docs == nil {
		docs = []document.Document{}
	}
	c.JSON(http.StatusOK, docs)
}

// Upload attaches a file to a client record outside the wizard flow.
func (h *DocumentHandler) Upload(c *gin.Context) {
	clientID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	kind := document.Kind(c.PostForm("kind"))
	switch kind {
	case document.KindPassport, document.KindSecondary, document.KindOther:
	case "":
		kind = document.KindOther
	default:
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid document kind"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot read uploaded file: " + err.Error()})
		return
	}
	defer f.Close()

	doc, err := h.svc.Upload(c.Request.Context(), clientID, kind, application.FileUpload{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     f,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// DownloadURL returns a short-lived presigned link to the stored object.
func (h *DocumentHandler) DownloadURL(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	doc, err := h.svc.GetDocument(id)
	if err != nil {
		if errors.Is(err, application.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	if !h.authorizeClient(c, doc.ClientID) {
		return
	}

	url, err := h.svc.DownloadURL(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.URLResponse{
		URL:       url,
		ExpiresIn: int(application.DownloadURLExpiry.Seconds()),
	})
}

// Review records an admin decision on a document.
func (h *DocumentHandler) Review(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input document.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	reviewerID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	doc, err := h.svc.Review(id, reviewerID, input)
	if err != nil {
		if errors.Is(err, application.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// authorizeClient allows admins, and owners of the client record. Document
// routes are keyed by document id, so ownership cannot be enforced by the
// route middleware.
func (h *DocumentHandler) authorizeClient(c *gin.Context, clientID uint) bool {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return false
	}
	if claims.IsAdmin {
		return true
	}

	owns, err := h.clients.OwnsClient(claims.UserID, clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return false
	}
	if !owns {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
		return false
	}
	return true
}
