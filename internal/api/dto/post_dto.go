package dto

import "Palaver/internal/pkg/util"

// PostDTO 主题详情页里的一条帖子
type PostDTO struct {
	ID            uint64 `json:"id"`
	Message       string `json:"message"`
	CreatedByID   uint64 `json:"created_by_id"`
	CreatedByName string `json:"created_by_name"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// TopicPostsDTO 主题详情页数据
type TopicPostsDTO struct {
	Board      *BoardDTO        `json:"board"`
	Topic      *TopicDTO        `json:"topic"`
	Posts      []*PostDTO       `json:"posts"`
	Pagination *util.Pagination `json:"pagination"`
}

// EditPostDTO 编辑页回显数据
type EditPostDTO struct {
	PostID  uint64 `json:"post_id"`
	BoardID uint64 `json:"board_id"`
	TopicID uint64 `json:"topic_id"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
