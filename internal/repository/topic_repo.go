package repository

import (
	"Palaver/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type TopicRepo interface {
	CreateTopicWithPost(ctx context.Context, topic *model.Topic, post *model.Post) error
	GetTopicById(ctx context.Context, id uint64) (*model.Topic, error)
	GetTopicByBoardAndId(ctx context.Context, boardID uint64, topicID uint64) (*model.Topic, error)
	GetTopicsByBoard(ctx context.Context, boardID uint64, keyword string, limit int, offset int) ([]*model.Topic, error)
	CountTopicsByBoard(ctx context.Context, boardID uint64, keyword string) (int64, error)
	GetPostCountsByTopicIds(ctx context.Context, ids []uint64) (map[uint64]int64, error)
	IncrementViews(ctx context.Context, topicID uint64) error
	TouchLastUpdated(ctx context.Context, topicID uint64, at time.Time) error
}

type TopicRepoImpl struct {
	db *gorm.DB
}

func NewTopicRepo(db *gorm.DB) TopicRepo {
	return &TopicRepoImpl{db: db}
}

// CreateTopicWithPost 主题与首帖同一事务落库，避免出现空主题
func (s *TopicRepoImpl) CreateTopicWithPost(ctx context.Context, topic *model.Topic, post *model.Post) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(topic); result.Error != nil {
			return result.Error
		}

		post.TopicID = topic.ID
		if result := tx.Create(post); result.Error != nil {
			return result.Error
		}

		return nil
	})
}

func (s *TopicRepoImpl) GetTopicById(ctx context.Context, id uint64) (*model.Topic, error) {
	topic := &model.Topic{}
	result := s.db.WithContext(ctx).
		Preload("Starter").
		First(topic, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return topic, nil
}

// GetTopicByBoardAndId 按版块+主题双条件查找，版块不匹配视同不存在
func (s *TopicRepoImpl) GetTopicByBoardAndId(ctx context.Context, boardID uint64, topicID uint64) (*model.Topic, error) {
	topic := &model.Topic{}
	result := s.db.WithContext(ctx).
		Preload("Board").
		Preload("Starter").
		Where("board_id = ?", boardID).
		First(topic, topicID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return topic, nil
}

func (s *TopicRepoImpl) GetTopicsByBoard(ctx context.Context, boardID uint64, keyword string, limit int, offset int) ([]*model.Topic, error) {
	topics := make([]*model.Topic, 0)
	query := s.db.WithContext(ctx).
		Preload("Starter").
		Where("board_id = ?", boardID)
	if keyword != "" {
		query = query.Where("subject LIKE ?", "%"+keyword+"%")
	}
	result := query.
		Order("last_updated DESC").
		Limit(limit).
		Offset(offset).
		Find(&topics)
	if result.Error != nil {
		return nil, result.Error
	}
	return topics, nil
}

func (s *TopicRepoImpl) CountTopicsByBoard(ctx context.Context, boardID uint64, keyword string) (int64, error) {
	var count int64
	query := s.db.WithContext(ctx).
		Model(&model.Topic{}).
		Where("board_id = ?", boardID)
	if keyword != "" {
		query = query.Where("subject LIKE ?", "%"+keyword+"%")
	}
	if result := query.Count(&count); result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

type topicCountRow struct {
	TopicID uint64
	Cnt     int64
}

func (s *TopicRepoImpl) GetPostCountsByTopicIds(ctx context.Context, ids []uint64) (map[uint64]int64, error) {
	rows := make([]*topicCountRow, 0)
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Select("topic_id AS topic_id, COUNT(*) AS cnt").
		Where("topic_id IN ?", ids).
		Group("topic_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		counts[row.TopicID] = row.Cnt
	}
	return counts, nil
}

// IncrementViews 浏览数自增直接落库，响应返回前即已持久化
func (s *TopicRepoImpl) IncrementViews(ctx context.Context, topicID uint64) error {
	result := s.db.WithContext(ctx).
		Model(&model.Topic{}).
		Where("id = ?", topicID).
		Update("views", gorm.Expr("views + 1"))
	return result.Error
}

func (s *TopicRepoImpl) TouchLastUpdated(ctx context.Context, topicID uint64, at time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&model.Topic{}).
		Where("id = ?", topicID).
		Update("last_updated", at)
	return result.Error
}
