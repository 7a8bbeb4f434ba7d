package handlers

import (
	"errors"
	"net/http"

	"github.com/delvaty/construccion-easy/internal/application"
	"github.com/delvaty/construccion-easy/internal/domain/client"
	"github.com/delvaty/construccion-easy/pkg/response"
	"github.com/delvaty/construccion-easy/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	svc *application.ClientService
}

func NewClientHandler(svc *application.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// GetClients lists all client records for the back office.
func (h *ClientHandler) GetClients(c *gin.Context) {
	page, limit := utils.ParsePagingQuery(c)

	clients, err := h.svc.ListClients(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: clients})
}

// GetMyClients lists the caller's own client records.
func (h *ClientHandler) GetMyClients(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	clients, err := h.svc.MyClients(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if clients == nil {
		clients = []client.Client{}
	}
	c.JSON(http.StatusOK, clients)
}

func (h *ClientHandler) GetClientByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	cl, err := h.svc.GetClient(id)
	if err != nil {
		if errors.Is(err, application.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, cl)
}

// GetClientDetail returns the base row plus the process-specific extension
// and sub-list rows.
func (h *ClientHandler) GetClientDetail(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	detail, err := h.svc.GetDetail(id)
	if err != nil {
		if errors.Is(err, application.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input client.UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.svc.UpdateClient(id, input)
	if err != nil {
		if errors.Is(err, application.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.RemoveClient(id); err != nil {
		if errors.Is(err, application.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
