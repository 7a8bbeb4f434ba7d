package handlers

import (
	"errors"
	"net/http"

	"github.com/delvaty/construccion-easy/internal/application"
	"github.com/delvaty/construccion-easy/internal/domain/ticket"
	"github.com/delvaty/construccion-easy/pkg/response"
	"github.com/delvaty/construccion-easy/pkg/utils"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input ticket.CreateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	t, err := h.svc.CreateTicket(userID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, t)
}

// GetTickets: admins see everything, clients only their own.
func (h *TicketHandler) GetTickets(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var tickets []ticket.Ticket
	if claims.IsAdmin {
		tickets, err = h.svc.GetAllTickets()
	} else {
		tickets, err = h.svc.GetUserTickets(claims.UserID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if tickets == nil {
		tickets = []ticket.Ticket{}
	}
	c.JSON(http.StatusOK, tickets)
}

func (h *TicketHandler) GetTicketByID(c *gin.Context) {
	t, ok := h.loadAuthorized(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TicketHandler) UpdateTicketStatus(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input ticket.UpdateTicketStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	t, err := h.svc.UpdateTicketStatus(id, input.Status)
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TicketHandler) AddMessage(c *gin.Context) {
	t, ok := h.loadAuthorized(c)
	if !ok {
		return
	}

	claims, _ := utils.GetClaimsFromContext(c)

	var input ticket.CreateTicketMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	msg, err := h.svc.AddMessage(t.ID, claims.UserID, input.Content)
	if err != nil {
		if errors.Is(err, application.ErrTicketClosed) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *TicketHandler) ListMessages(c *gin.Context) {
	t, ok := h.loadAuthorized(c)
	if !ok {
		return
	}

	msgs, err := h.svc.ListMessages(t.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if msgs == nil {
		msgs = []ticket.TicketMessage{}
	}
	c.JSON(http.StatusOK, msgs)
}

// loadAuthorized fetches the ticket and checks the caller may touch it.
func (h *TicketHandler) loadAuthorized(c *gin.Context) (ticket.Ticket, bool) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return ticket.Ticket{}, false
	}

	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return ticket.Ticket{}, false
	}

	t, err := h.svc.GetTicket(id)
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return ticket.Ticket{}, false
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return ticket.Ticket{}, false
	}

	if !claims.IsAdmin && t.UserID != claims.UserID {
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
		return ticket.Ticket{}, false
	}
	return t, true
}
