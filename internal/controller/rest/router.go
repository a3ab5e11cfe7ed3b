package rest

import (
	"StorefrontPayments/internal/controller/rest/handlers"
	"StorefrontPayments/pkg/health"
	"StorefrontPayments/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type Router struct {
	payment        *handlers.PaymentHandler
	callback       *handlers.CallbackHandler
	order          *handlers.OrderHandler
	healthRegistry *health.Registry
}

func (r *Router) SetUp(engine *gin.Engine) {
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := engine.Group("/api/v1")
	api.POST("/payments/:provider/init", r.payment.Init)
	api.GET("/orders/:number/payment", r.order.GetPayment)
	api.GET("/orders/:number/payment-events", r.order.GetEvents)

	// Some providers send the shopper back with a form POST.
	callback := engine.Group("/callback/:provider")
	callback.GET("/return", r.callback.Return)
	callback.POST("/return", r.callback.Return)
	callback.POST("/webhook", r.callback.Webhook)
	callback.POST("/precheck", r.callback.Precheck)
}

func NewRouter(
	payment *handlers.PaymentHandler,
	callback *handlers.CallbackHandler,
	order *handlers.OrderHandler,
	healthRegistry *health.Registry,
) *Router {
	return &Router{
		payment:        payment,
		callback:       callback,
		order:          order,
		healthRegistry: healthRegistry,
	}
}
