package event

import (
	"github.com/pharod/boltnew-company-timeline/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	evts := r.Group("/events")
	evts.Use(middleware.ContextLogger(logger))
	{
		evts.GET("",
			middleware.RateLimitByIP(5, 20),
			handler.List,
		)

		evts.GET("/timeline",
			middleware.RateLimitByIP(5, 20),
			handler.Timeline,
		)

		evts.GET("/:id",
			middleware.RateLimitByIP(5, 20),
			handler.GetByID,
		)

		evts.POST("",
			middleware.RateLimitByIP(1, 5),
			middleware.Idempotency(rdb),
			handler.Record,
		)
	}
}
