package handlers

import (
	"context"
	"net/http"

	"StorefrontPayments/internal/domain/gateway"
	"StorefrontPayments/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

type PaymentInitiator interface {
	Initiate(ctx context.Context, req payment.InitiateRequest) (gateway.Initiation, error)
}

type PaymentHandler struct {
	initiator PaymentInitiator
}

func NewPaymentHandler(initiator PaymentInitiator) *PaymentHandler {
	return &PaymentHandler{initiator: initiator}
}

type InitRequest struct {
	OrderNumber string `json:"orderNumber" binding:"required"`
	Lang        string `json:"lang"`
}

func (h *PaymentHandler) Init(c *gin.Context) {
	provider, err := gateway.NewProvider(c.Param("provider"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req InitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithProblem(c, problemInvalidRequest, err.Error())
		return
	}

	res, err := h.initiator.Initiate(c.Request.Context(), payment.InitiateRequest{
		OrderNumber: req.OrderNumber,
		Provider:    provider,
		Locale:      req.Lang,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
