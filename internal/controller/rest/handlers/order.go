package handlers

import (
	"context"
	"net/http"

	"StorefrontPayments/internal/domain/order"

	"github.com/gin-gonic/gin"
)

type OrderReader interface {
	GetPaymentState(ctx context.Context, number string) (order.PaymentState, error)
	GetEvents(ctx context.Context, number string, query order.EventQuery) ([]order.PaymentEvent, error)
}

type OrderHandler struct {
	service OrderReader
}

func NewOrderHandler(s OrderReader) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) GetPayment(c *gin.Context) {
	res, err := h.service.GetPaymentState(c.Request.Context(), c.Param("number"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *OrderHandler) GetEvents(c *gin.Context) {
	var query order.EventQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithProblem(c, problemInvalidRequest, err.Error())
		return
	}

	res, err := h.service.GetEvents(c.Request.Context(), c.Param("number"), query)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
