package app

import (
	"StorefrontPayments/pkg/logger"
	"StorefrontPayments/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(logger.CorrelationMiddleware(), metrics.GinMiddleware(), logger.GinBodyLogger(), gin.Recovery())
	return engine
}
