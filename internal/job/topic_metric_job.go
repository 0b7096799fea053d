package job

import (
	"Palaver/internal/pkg/consts"
	"Palaver/internal/pkg/logger"
	"Palaver/internal/pkg/redis"
	"Palaver/internal/pkg/util"
	"Palaver/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// TopicMetricsJob 定时把有浏览增量的主题刷入每日指标表
type TopicMetricsJob struct {
	topicMetricSvc service.TopicMetricService
}

func NewTopicMetricsJob(topicMetricSvc service.TopicMetricService) *TopicMetricsJob {
	return &TopicMetricsJob{
		topicMetricSvc: topicMetricSvc,
	}
}

func (s *TopicMetricsJob) Run() {
	traceID := "job-topic-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.TopicViewDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.TopicViewDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get topic dirty set error", "err", err)
		return
	}

	topicIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert topic set to int slice error", "err", err)
		return
	}

	for _, tid := range topicIDs {
		err = s.topicMetricSvc.SyncTopicMetric(ctx, tid)
		if err != nil {
			log.ErrorContext(ctx, "sync topic daily metric error", "tid", tid, "err", err)
		}
	}

	err = redis.DeleteKey(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "delete topic processing set error", "err", err)
	}

	log.InfoContext(ctx, "sync topic metrics success", "topic_count", len(topicIDs))
}
