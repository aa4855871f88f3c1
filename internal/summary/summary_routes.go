package summary

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
	summaries := r.Group("/summaries")
	summaries.Use(middleware.ContextLogger(logger))
	{
		summaries.GET("/month",
			middleware.RateLimitByIP(5, 20),
			handler.Month,
		)

		summaries.GET("/year",
			middleware.RateLimitByIP(5, 20),
			handler.Year,
		)
	}
}
