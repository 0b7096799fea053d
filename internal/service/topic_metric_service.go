package service

import (
	"Palaver/internal/model"
	"Palaver/internal/pkg/util"
	"Palaver/internal/repository"
	"context"
	"time"
)

type TopicMetricService interface {
	// SyncTopicMetric 同步主题每日指标快照
	SyncTopicMetric(ctx context.Context, topicID uint64) error
}

type topicMetricServiceImpl struct {
	topicMetricRepo repository.TopicMetricRepo
	topicRepo       repository.TopicRepo
	postRepo        repository.PostRepo
}

func NewTopicMetricService(
	topicMetricRepo repository.TopicMetricRepo,
	topicRepo repository.TopicRepo,
	postRepo repository.PostRepo,
) TopicMetricService {
	return &topicMetricServiceImpl{
		topicMetricRepo: topicMetricRepo,
		topicRepo:       topicRepo,
		postRepo:        postRepo,
	}
}

// SyncTopicMetric 实现：把主题表的实时计数刷入每日指标表
func (s *topicMetricServiceImpl) SyncTopicMetric(ctx context.Context, topicID uint64) error {
	topic, err := s.topicRepo.GetTopicById(ctx, topicID)
	if err != nil {
		return err
	}
	if topic == nil {
		return ErrTopicNotFound
	}

	postCount, err := s.postRepo.CountPostsByTopic(ctx, topicID)
	if err != nil {
		return err
	}
	var replies int64
	if postCount > 0 {
		replies = postCount - 1
	}

	metric := &model.TopicDailyMetric{
		TopicID: topicID,
		Date:    util.GetMidnight(time.Now()),
		Views:   topic.Views,
		Replies: replies,
	}
	return s.topicMetricRepo.UpsertDailyMetric(ctx, metric)
}
