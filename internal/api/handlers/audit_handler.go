package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/delvaty/construccion-easy/internal/application"
	"github.com/delvaty/construccion-easy/internal/repository"
	"github.com/delvaty/construccion-easy/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// QueryAuditLogs filters the audit trail. Admin only.
func (h *AuditHandler) QueryAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams

	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user_id"})
			return
		}
		uid := uint(id)
		params.UserID = &uid
	}
	if raw := c.Query("resource_type"); raw != "" {
		params.ResourceType = &raw
	}
	if raw := c.Query("action"); raw != "" {
		params.Action = &raw
	}
	if raw := c.Query("start_time"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid start_time, expected RFC3339"})
			return
		}
		params.StartTime = &t
	}
	if raw := c.Query("end_time"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid end_time, expected RFC3339"})
			return
		}
		params.EndTime = &t
	}

	params.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	params.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if params.Limit <= 0 || params.Limit > 1000 {
		params.Limit = 100
	}
	if params.Offset < 0 {
		params.Offset = 0
	}

	logs, err := h.svc.QueryAuditLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: logs})
}
