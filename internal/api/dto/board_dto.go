package dto

// BoardDTO 首页版块概览
type BoardDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TopicsCount int64  `json:"topics_count"`
	PostsCount  int64  `json:"posts_count"`
}
