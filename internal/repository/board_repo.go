package repository

import (
	"Palaver/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type BoardRepo interface {
	GetBoards(ctx context.Context) ([]*model.Board, error)
	GetBoardById(ctx context.Context, id uint64) (*model.Board, error)
	GetTopicCountsByBoardIds(ctx context.Context, ids []uint64) (map[uint64]int64, error)
	GetPostCountsByBoardIds(ctx context.Context, ids []uint64) (map[uint64]int64, error)
}

type BoardRepoImpl struct {
	db *gorm.DB
}

func NewBoardRepo(db *gorm.DB) BoardRepo {
	return &BoardRepoImpl{db: db}
}

func (s *BoardRepoImpl) GetBoards(ctx context.Context) ([]*model.Board, error) {
	boards := make([]*model.Board, 0)
	result := s.db.WithContext(ctx).
		Order("id ASC").
		Find(&boards)
	if result.Error != nil {
		return nil, result.Error
	}
	return boards, nil
}

func (s *BoardRepoImpl) GetBoardById(ctx context.Context, id uint64) (*model.Board, error) {
	board := &model.Board{}
	result := s.db.WithContext(ctx).First(board, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return board, nil
}

type boardCountRow struct {
	BoardID uint64
	Cnt     int64
}

func (s *BoardRepoImpl) GetTopicCountsByBoardIds(ctx context.Context, ids []uint64) (map[uint64]int64, error) {
	rows := make([]*boardCountRow, 0)
	result := s.db.WithContext(ctx).
		Model(&model.Topic{}).
		Select("board_id AS board_id, COUNT(*) AS cnt").
		Where("board_id IN ?", ids).
		Group("board_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		counts[row.BoardID] = row.Cnt
	}
	return counts, nil
}

func (s *BoardRepoImpl) GetPostCountsByBoardIds(ctx context.Context, ids []uint64) (map[uint64]int64, error) {
	rows := make([]*boardCountRow, 0)
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Select("topics.board_id AS board_id, COUNT(*) AS cnt").
		Joins("JOIN topics ON topics.id = posts.topic_id").
		Where("topics.board_id IN ?", ids).
		Group("topics.board_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := make(map[uint64]int64, len(rows))
	for _, row := range rows {
		counts[row.BoardID] = row.Cnt
	}
	return counts, nil
}
