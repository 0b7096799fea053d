package service

import (
	"Palaver/internal/api/dto"
	"Palaver/internal/model"
	"Palaver/internal/pkg/consts"
	"Palaver/internal/pkg/util"
	"Palaver/internal/repository"
	"context"
	"time"

	"github.com/jinzhu/copier"
)

const timeLayout = "2006-01-02 15:04"

type TopicService interface {
	GetBoard(ctx context.Context, boardID uint64) (*dto.BoardDTO, error)
	GetBoardTopics(ctx context.Context, boardID uint64, keyword string, pageParam string) (*dto.BoardTopicsDTO, error)
	CreateTopic(ctx context.Context, userID uint64, boardID uint64, form *dto.NewTopicForm) (uint64, error)
}

type TopicServiceImpl struct {
	boardRepo repository.BoardRepo
	topicRepo repository.TopicRepo
}

func NewTopicService(boardRepo repository.BoardRepo, topicRepo repository.TopicRepo) TopicService {
	return &TopicServiceImpl{
		boardRepo: boardRepo,
		topicRepo: topicRepo,
	}
}

func (s *TopicServiceImpl) GetBoard(ctx context.Context, boardID uint64) (*dto.BoardDTO, error) {
	board, err := s.boardRepo.GetBoardById(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}

	boardDTO := &dto.BoardDTO{}
	if err = copier.Copy(boardDTO, board); err != nil {
		return nil, err
	}
	return boardDTO, nil
}

func (s *TopicServiceImpl) GetBoardTopics(ctx context.Context, boardID uint64, keyword string, pageParam string) (*dto.BoardTopicsDTO, error) {
	board, err := s.boardRepo.GetBoardById(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}

	total, err := s.topicRepo.CountTopicsByBoard(ctx, boardID, keyword)
	if err != nil {
		return nil, err
	}

	pagination := util.Paginate(pageParam, consts.TopicsPageSize, total)
	topics, err := s.topicRepo.GetTopicsByBoard(ctx, boardID, keyword, pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, err
	}

	topicDTOs, err := s.toTopicDTOs(ctx, topics)
	if err != nil {
		return nil, err
	}

	boardDTO := &dto.BoardDTO{}
	if err = copier.Copy(boardDTO, board); err != nil {
		return nil, err
	}

	return &dto.BoardTopicsDTO{
		Board:      boardDTO,
		Topics:     topicDTOs,
		Keyword:    keyword,
		Pagination: pagination,
	}, nil
}

// CreateTopic 创建主题并附带首帖，返回新主题 ID
func (s *TopicServiceImpl) CreateTopic(ctx context.Context, userID uint64, boardID uint64, form *dto.NewTopicForm) (uint64, error) {
	board, err := s.boardRepo.GetBoardById(ctx, boardID)
	if err != nil {
		return 0, err
	}
	if board == nil {
		return 0, ErrBoardNotFound
	}

	now := time.Now()
	topic := &model.Topic{
		Subject:     form.Subject,
		BoardID:     boardID,
		StarterID:   userID,
		LastUpdated: now,
		CreatedAt:   now,
	}
	post := &model.Post{
		Message:     form.Message,
		CreatedByID: userID,
		CreatedAt:   now,
	}

	if err = s.topicRepo.CreateTopicWithPost(ctx, topic, post); err != nil {
		return 0, err
	}
	return topic.ID, nil
}

func (s *TopicServiceImpl) toTopicDTOs(ctx context.Context, topics []*model.Topic) ([]*dto.TopicDTO, error) {
	if len(topics) == 0 {
		return []*dto.TopicDTO{}, nil
	}

	ids := make([]uint64, 0, len(topics))
	for _, topic := range topics {
		ids = append(ids, topic.ID)
	}
	postCounts, err := s.topicRepo.GetPostCountsByTopicIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	topicDTOs := make([]*dto.TopicDTO, 0, len(topics))
	for _, topic := range topics {
		topicDTO := &dto.TopicDTO{}
		if err = copier.Copy(topicDTO, topic); err != nil {
			return nil, err
		}
		// 回复数 = 帖子数 - 1，首帖不算回复
		if cnt := postCounts[topic.ID]; cnt > 0 {
			topicDTO.Replies = cnt - 1
		}
		topicDTO.StarterName = topic.Starter.Username
		topicDTO.LastUpdated = topic.LastUpdated.Format(timeLayout)
		topicDTOs = append(topicDTOs, topicDTO)
	}
	return topicDTOs, nil
}
