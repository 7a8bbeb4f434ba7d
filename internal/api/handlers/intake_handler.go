package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/delvaty/construccion-easy/internal/application"
	"github.com/delvaty/construccion-easy/internal/domain/intake"
	"github.com/delvaty/construccion-easy/pkg/response"
	"github.com/delvaty/construccion-easy/pkg/utils"
	"github.com/gin-gonic/gin"
)

type IntakeHandler struct {
	svc *application.IntakeService
}

func NewIntakeHandler(svc *application.IntakeService) *IntakeHandler {
	return &IntakeHandler{svc: svc}
}

// intakeStatus maps service errors onto HTTP statuses. Validation failures
// are client errors; the guard block is a conflict.
func intakeStatus(err error) int {
	switch {
	case errors.Is(err, application.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, application.ErrNotYourSession):
		return http.StatusForbidden
	case errors.Is(err, application.ErrSessionBlocked):
		return http.StatusConflict
	case errors.Is(err, application.ErrSessionNotEditable),
		errors.Is(err, application.ErrNotFinalStep),
		errors.Is(err, application.ErrUnknownList),
		errors.Is(err, intake.ErrNoProcessSelected),
		errors.Is(err, intake.ErrFinalStep),
		errors.Is(err, intake.ErrTattooIncomplete),
		errors.Is(err, intake.ErrTravelIncomplete),
		errors.Is(err, intake.ErrRelativeIncomplete):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *IntakeHandler) renderSession(c *gin.Context, sess intake.Session) {
	view, err := h.svc.View(sess)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// StartSession returns the caller's open wizard draft, creating one when
// needed. A blocked draft carries state "blocked"; the front end shows the
// redirect modal.
func (h *IntakeHandler) StartSession(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	sess, err := h.svc.StartSession(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	h.renderSession(c, sess)
}

func (h *IntakeHandler) GetSession(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	sess, err := h.svc.GetSession(userID, sessionID)
	if err != nil {
		c.JSON(intakeStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	h.renderSession(c, sess)
}

func (h *IntakeHandler) SelectProcess(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	var input intake.SelectProcessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := h.svc.SelectProcess(userID, sessionID, intake.ProcessType(input.ProcessType))
	if err != nil {
		c.JSON(intakeStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	h.renderSession(c, sess)
}

func (h *IntakeHandler) UpdateRecord(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	var rec intake.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := h.svc.UpdateRecord(userID, sessionID, rec)
	if err != nil {
		c.JSON(intakeStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	h.renderSession(c, sess)
}

func (h *IntakeHandler) AddEntry(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	var input intake.AddEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := h.svc.AddEntry(userID, sessionID, input.List)
	if err != nil {
		c.JSON(intakeStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	h.renderSession(c, sess)
}

func (h *IntakeHandler) UpdateEntry(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	var input intake.UpdateEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	sess, err := h.svc.UpdateEntry(userID, sessionID, input)
	if err != nil {
		c.JSON(intakeStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	h.renderSession(c, sess)
}

func (h *IntakeHandler) RemoveEntry(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	list := c.Query("list")
	entryID := c.Query("id")
	if list == "" || entryID == "" {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "list and id query parameters are required"})
		return
	}

	sess, err := h.svc.RemoveEntry(userID, sessionID, list, entryID)
	if err != nil {
		c.JSON(intakeStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	h.renderSession(c, sess)
}

func (h *IntakeHandler) Next(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	sess, err := h.svc.Next(userID, sessionID)
	if err != nil {
		c.JSON(intakeStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	h.renderSession(c, sess)
}

func (h *IntakeHandler) Previous(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	sess, err := h.svc.Previous(userID, sessionID)
	if err != nil {
		c.JSON(intakeStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	h.renderSession(c, sess)
}

// Submit runs the submission protocol. The passport and secondary document
// arrive as optional multipart files alongside the final step.
func (h *IntakeHandler) Submit(c *gin.Context) {
	userID, sessionID, ok := h.sessionParams(c)
	if !ok {
		return
	}

	files := make(map[string]application.FileUpload)
	var open []multipart.File
	defer func() {
		for _, f := range open {
			_ = f.Close()
		}
	}()

	for _, field := range []string{application.FilePassport, application.FileSecondary} {
		header, err := c.FormFile(field)
		if err != nil {
			continue // optional
		}
		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot read uploaded file: " + err.Error()})
			return
		}
		open = append(open, f)
		files[field] = application.FileUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     f,
		}
	}

	sess, err := h.svc.Submit(c.Request.Context(), userID, sessionID, files)
	if err != nil {
		c.JSON(intakeStatus(err), response.ErrorResponse{Error: err.Error()})
		return
	}
	h.renderSession(c, sess)
}

func (h *IntakeHandler) sessionParams(c *gin.Context) (userID, sessionID uint, ok bool) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return 0, 0, false
	}
	sessionID, err = utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return 0, 0, false
	}
	return userID, sessionID, true
}
