package repository

import (
	"Palaver/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TopicMetricRepo interface {
	UpsertDailyMetric(ctx context.Context, metric *model.TopicDailyMetric) error
	GetDailyMetrics(ctx context.Context, topicID uint64) ([]*model.TopicDailyMetric, error)
}

type TopicMetricRepoImpl struct {
	db *gorm.DB
}

func NewTopicMetricRepo(db *gorm.DB) TopicMetricRepo {
	return &TopicMetricRepoImpl{db: db}
}

// UpsertDailyMetric 同一主题同一天只保留一行快照
func (s *TopicMetricRepoImpl) UpsertDailyMetric(ctx context.Context, metric *model.TopicDailyMetric) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "topic_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"views", "replies"}),
		}).
		Create(metric).Error
}

func (s *TopicMetricRepoImpl) GetDailyMetrics(ctx context.Context, topicID uint64) ([]*model.TopicDailyMetric, error) {
	metrics := make([]*model.TopicDailyMetric, 0)
	result := s.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("date ASC").
		Find(&metrics)
	if result.Error != nil {
		return nil, result.Error
	}
	return metrics, nil
}
