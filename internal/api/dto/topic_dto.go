package dto

import "Palaver/internal/pkg/util"

// TopicDTO 版块主题列表里的一行
type TopicDTO struct {
	ID          uint64 `json:"id"`
	Subject     string `json:"subject"`
	StarterName string `json:"starter_name"`
	Replies     int64  `json:"replies"`
	Views       uint64 `json:"views"`
	LastUpdated string `json:"last_updated"`
}

// BoardTopicsDTO 版块主题列表页数据
type BoardTopicsDTO struct {
	Board      *BoardDTO        `json:"board"`
	Topics     []*TopicDTO      `json:"topics"`
	Keyword    string           `json:"keyword"`
	Pagination *util.Pagination `json:"pagination"`
}
