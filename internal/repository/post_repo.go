package repository

import (
	"Palaver/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreateReply(ctx context.Context, post *model.Post) error
	GetPostsByTopic(ctx context.Context, topicID uint64, limit int, offset int) ([]*model.Post, error)
	CountPostsByTopic(ctx context.Context, topicID uint64) (int64, error)
	GetPostById(ctx context.Context, id uint64) (*model.Post, error)
	UpdatePostMessage(ctx context.Context, post *model.Post) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

// CreateReply 写入回帖并同步主题的 last_updated
func (s *PostRepoImpl) CreateReply(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(post); result.Error != nil {
			return result.Error
		}

		result := tx.Model(&model.Topic{}).
			Where("id = ?", post.TopicID).
			Update("last_updated", post.CreatedAt)
		return result.Error
	})
}

func (s *PostRepoImpl) GetPostsByTopic(ctx context.Context, topicID uint64, limit int, offset int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	result := s.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("topic_id = ?", topicID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *PostRepoImpl) CountPostsByTopic(ctx context.Context, topicID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("topic_id = ?", topicID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (s *PostRepoImpl) GetPostById(ctx context.Context, id uint64) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).
		Preload("Topic").
		First(post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

func (s *PostRepoImpl) UpdatePostMessage(ctx context.Context, post *model.Post) error {
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", post.ID).
		Select("message", "updated_by_id", "updated_at").
		Updates(post)
	return result.Error
}
