package service

import (
	"Palaver/internal/api/dto"
	"Palaver/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type BoardService interface {
	GetBoards(ctx context.Context) ([]*dto.BoardDTO, error)
}

type BoardServiceImpl struct {
	boardRepo repository.BoardRepo
}

func NewBoardService(boardRepo repository.BoardRepo) BoardService {
	return &BoardServiceImpl{
		boardRepo: boardRepo,
	}
}

func (s *BoardServiceImpl) GetBoards(ctx context.Context) ([]*dto.BoardDTO, error) {
	boards, err := s.boardRepo.GetBoards(ctx)
	if err != nil {
		return nil, err
	}
	if len(boards) == 0 {
		return []*dto.BoardDTO{}, nil
	}

	ids := make([]uint64, 0, len(boards))
	for _, board := range boards {
		ids = append(ids, board.ID)
	}

	topicCounts, err := s.boardRepo.GetTopicCountsByBoardIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	postCounts, err := s.boardRepo.GetPostCountsByBoardIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	boardDTOs := make([]*dto.BoardDTO, 0, len(boards))
	for _, board := range boards {
		boardDTO := &dto.BoardDTO{}
		if err = copier.Copy(boardDTO, board); err != nil {
			return nil, err
		}
		boardDTO.TopicsCount = topicCounts[board.ID]
		boardDTO.PostsCount = postCounts[board.ID]
		boardDTOs = append(boardDTOs, boardDTO)
	}
	return boardDTOs, nil
}
