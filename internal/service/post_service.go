package service

import (
	"Palaver/internal/api/dto"
	"Palaver/internal/model"
	"Palaver/internal/pkg/consts"
	"Palaver/internal/pkg/redis"
	"Palaver/internal/pkg/util"
	"Palaver/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type PostService interface {
	GetTopicPosts(ctx context.Context, boardID uint64, topicID uint64, pageParam string) (*dto.TopicPostsDTO, error)
	GetTopicSummary(ctx context.Context, boardID uint64, topicID uint64) (*dto.BoardDTO, *dto.TopicDTO, error)
	CreateReply(ctx context.Context, userID uint64, boardID uint64, topicID uint64, form *dto.ReplyForm) (int, error)
	GetPostForEdit(ctx context.Context, userID uint64, boardID uint64, topicID uint64, postID uint64) (*dto.EditPostDTO, error)
	UpdatePost(ctx context.Context, userID uint64, boardID uint64, topicID uint64, postID uint64, form *dto.ReplyForm) (*dto.EditPostDTO, error)
}

type PostServiceImpl struct {
	topicRepo repository.TopicRepo
	postRepo  repository.PostRepo
}

func NewPostService(topicRepo repository.TopicRepo, postRepo repository.PostRepo) PostService {
	return &PostServiceImpl{
		topicRepo: topicRepo,
		postRepo:  postRepo,
	}
}

// GetTopicPosts 主题详情页：浏览数先落库再出数据，当天增量另记脏集合
func (s *PostServiceImpl) GetTopicPosts(ctx context.Context, boardID uint64, topicID uint64, pageParam string) (*dto.TopicPostsDTO, error) {
	topic, err := s.topicRepo.GetTopicByBoardAndId(ctx, boardID, topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}

	if err = s.topicRepo.IncrementViews(ctx, topicID); err != nil {
		return nil, err
	}
	topic.Views++

	if err = redis.SAdd(ctx, consts.TopicViewDirtyKey, topicID); err != nil {
		log.WarnContext(ctx, "mark topic dirty failed", "topic_id", topicID, "err", err)
	}

	total, err := s.postRepo.CountPostsByTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}

	pagination := util.Paginate(pageParam, consts.PostsPageSize, total)
	posts, err := s.postRepo.GetPostsByTopic(ctx, topicID, pagination.PageSize, pagination.Offset())
	if err != nil {
		return nil, err
	}

	postDTOs := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		postDTOs = append(postDTOs, toPostDTO(post))
	}

	boardDTO, topicDTO, err := s.toSummaryDTOs(topic, total)
	if err != nil {
		return nil, err
	}

	return &dto.TopicPostsDTO{
		Board:      boardDTO,
		Topic:      topicDTO,
		Posts:      postDTOs,
		Pagination: pagination,
	}, nil
}

func (s *PostServiceImpl) GetTopicSummary(ctx context.Context, boardID uint64, topicID uint64) (*dto.BoardDTO, *dto.TopicDTO, error) {
	topic, err := s.topicRepo.GetTopicByBoardAndId(ctx, boardID, topicID)
	if err != nil {
		return nil, nil, err
	}
	if topic == nil {
		return nil, nil, ErrTopicNotFound
	}

	total, err := s.postRepo.CountPostsByTopic(ctx, topic.ID)
	if err != nil {
		return nil, nil, err
	}
	return s.toSummaryDTOs(topic, total)
}

// CreateReply 回帖落库并返回该回帖所在的页码，便于跳转
func (s *PostServiceImpl) CreateReply(ctx context.Context, userID uint64, boardID uint64, topicID uint64, form *dto.ReplyForm) (int, error) {
	topic, err := s.topicRepo.GetTopicByBoardAndId(ctx, boardID, topicID)
	if err != nil {
		return 0, err
	}
	if topic == nil {
		return 0, ErrTopicNotFound
	}

	post := &model.Post{
		TopicID:     topicID,
		Message:     form.Message,
		CreatedByID: userID,
		CreatedAt:   time.Now(),
	}
	if err = s.postRepo.CreateReply(ctx, post); err != nil {
		return 0, err
	}

	total, err := s.postRepo.CountPostsByTopic(ctx, topicID)
	if err != nil {
		return 0, err
	}
	lastPage := int((total + consts.PostsPageSize - 1) / consts.PostsPageSize)
	if lastPage < 1 {
		lastPage = 1
	}
	return lastPage, nil
}

// GetPostForEdit 路径不匹配或非作者一律按不存在处理，不暴露帖子归属
func (s *PostServiceImpl) GetPostForEdit(ctx context.Context, userID uint64, boardID uint64, topicID uint64, postID uint64) (*dto.EditPostDTO, error) {
	post, err := s.postRepo.GetPostById(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.TopicID != topicID || post.Topic.BoardID != boardID {
		return nil, ErrPostNotFound
	}
	if post.CreatedByID != userID {
		return nil, ErrPostNotFound
	}

	return &dto.EditPostDTO{
		PostID:  post.ID,
		BoardID: post.Topic.BoardID,
		TopicID: post.TopicID,
		Subject: post.Topic.Subject,
		Message: post.Message,
	}, nil
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, userID uint64, boardID uint64, topicID uint64, postID uint64, form *dto.ReplyForm) (*dto.EditPostDTO, error) {
	edit, err := s.GetPostForEdit(ctx, userID, boardID, topicID, postID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post := &model.Post{
		ID:          postID,
		Message:     form.Message,
		UpdatedByID: &userID,
		UpdatedAt:   &now,
	}
	if err = s.postRepo.UpdatePostMessage(ctx, post); err != nil {
		return nil, err
	}

	edit.Message = form.Message
	return edit, nil
}

func (s *PostServiceImpl) toSummaryDTOs(topic *model.Topic, postCount int64) (*dto.BoardDTO, *dto.TopicDTO, error) {
	boardDTO := &dto.BoardDTO{}
	if err := copier.Copy(boardDTO, &topic.Board); err != nil {
		return nil, nil, err
	}

	topicDTO := &dto.TopicDTO{}
	if err := copier.Copy(topicDTO, topic); err != nil {
		return nil, nil, err
	}
	if postCount > 0 {
		topicDTO.Replies = postCount - 1
	}
	topicDTO.StarterName = topic.Starter.Username
	topicDTO.LastUpdated = topic.LastUpdated.Format(timeLayout)
	return boardDTO, topicDTO, nil
}

func toPostDTO(post *model.Post) *dto.PostDTO {
	postDTO := &dto.PostDTO{
		ID:            post.ID,
		Message:       post.Message,
		CreatedByID:   post.CreatedByID,
		CreatedByName: post.CreatedBy.Username,
		CreatedAt:     post.CreatedAt.Format(timeLayout),
	}
	if post.UpdatedAt != nil {
		postDTO.UpdatedAt = post.UpdatedAt.Format(timeLayout)
	}
	return postDTO
}
