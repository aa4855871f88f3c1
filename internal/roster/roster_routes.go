package roster

import (
	"github.com/pharod/boltnew-company-timeline/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	employees := r.Group("/roster")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByIP(5, 20),
			handler.List,
		)

		employees.GET("/active",
			middleware.RateLimitByIP(5, 20),
			handler.List,
		)
	}

	company := r.Group("/company")
	company.Use(middleware.ContextLogger(logger))
	{
		company.GET("",
			middleware.RateLimitByIP(5, 20),
			handler.Overview,
		)
	}
}
