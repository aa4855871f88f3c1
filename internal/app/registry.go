package app

import (
	"github.com/pharod/boltnew-company-timeline/internal/event"
	"github.com/pharod/boltnew-company-timeline/internal/messaging/kafka"
	"github.com/pharod/boltnew-company-timeline/internal/roster"
	"github.com/pharod/boltnew-company-timeline/internal/shared/counter"
	"github.com/pharod/boltnew-company-timeline/internal/summary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	eventRepo := event.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	eventService := event.NewServiceWithOutbox(db, eventRepo, counterRepo, outboxRepo, rdb, logger)
	rosterService := roster.NewService(eventService, rdb, logger)
	summaryService := summary.NewService(eventService, logger)

	// --- Handlers ---
	eventHandler := event.NewHandlerWithRedis(eventService, rdb, logger)
	rosterHandler := roster.NewHandler(rosterService, logger)
	summaryHandler := summary.NewHandler(summaryService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		event.RegisterRoutes(api, eventHandler, rdb, logger)
		roster.RegisterRoutes(api, rosterHandler, logger)
		summary.RegisterRoutes(api, summaryHandler, logger)
	}

	return nil
}
