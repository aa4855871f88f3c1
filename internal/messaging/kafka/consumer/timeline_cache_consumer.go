package consumer

import (
	"context"
	"encoding/json"

	"github.com/pharod/boltnew-company-timeline/internal/event"
	"github.com/pharod/boltnew-company-timeline/internal/events"
	"github.com/pharod/boltnew-company-timeline/internal/roster"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConsumeTimelineEvents keeps the cross-process read caches coherent: every
// recorded timeline event invalidates the cached log and roster projections
// so other replicas rebuild them on the next read.
func ConsumeTimelineEvents(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.timeline")
	log.Info("timeline event consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("timeline event consumer stopped")
				return
			}
			log.Error("fetch timeline message failed", zap.Error(err))
			continue
		}

		var evt events.TimelineEventRecordedEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			log.Error("decode timeline event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		keys := []string{event.LogCacheKey, roster.CacheKey, roster.ActiveCacheKey}
		if err := rdb.Del(ctx, keys...).Err(); err != nil {
			log.Error("invalidate read caches failed",
				zap.String("event_id", evt.EventID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit timeline message failed", zap.Error(err))
			continue
		}

		log.Info("read caches invalidated",
			zap.String("event_id", evt.EventID),
			zap.String("kind", evt.Kind),
		)
	}
}
