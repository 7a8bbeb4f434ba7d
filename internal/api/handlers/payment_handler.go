package handlers

import (
	"errors"
	"net/http"

	"github.com/delvaty/construccion-easy/internal/application"
	"github.com/delvaty/construccion-easy/internal/domain/payment"
	"github.com/delvaty/construccion-easy/pkg/response"
	"github.com/delvaty/construccion-easy/pkg/utils"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	svc     *application.PaymentService
	clients *application.ClientService
}

func NewPaymentHandler(svc *application.PaymentService, clients *application.ClientService) *PaymentHandler {
	return &PaymentHandler{svc: svc, clients: clients}
}

func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var input payment.CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.svc.CreatePayment(input)
	if err != nil {
		if errors.Is(err, application.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PaymentHandler) GetPayments(c *gin.Context) {
	page, limit := utils.ParsePagingQuery(c)

	payments, err := h.svc.ListPayments(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: payments})
}

// ListClientPayments lists the payment schedule of one client record.
func (h *PaymentHandler) ListClientPayments(c *gin.Context) {
	clientID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	payments, err := h.svc.ListClientPayments(clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if payments == nil {
		payments = []payment.Payment{}
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.svc.GetPayment(id)
	if err != nil {
		if errors.Is(err, application.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	if !h.authorizeClient(c, p.ClientID) {
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input payment.UpdatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.svc.UpdatePayment(id, input)
	if err != nil {
		if errors.Is(err, application.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// MarkPaid records an admin-confirmed payment.
func (h *PaymentHandler) MarkPaid(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input payment.MarkPaidInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	adminID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	p, err := h.svc.MarkPaid(id, adminID, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrPaymentAlreadyPaid):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.RemovePayment(id); err != nil {
		if errors.Is(err, application.ErrPaymentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PaymentHandler) authorizeClient(c *gin.Context, clientID uint) bool {
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
