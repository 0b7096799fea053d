package model

import (
	"time"
)

type Post struct {
	ID          uint64     `gorm:"primaryKey"`
	TopicID     uint64     `gorm:"not null;index:idx_topic_id" json:"topic_id"`
	Message     string     `gorm:"type:text;not null" json:"message"`
	CreatedByID uint64     `gorm:"not null;index:idx_created_by" json:"created_by_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedByID *uint64    `json:"updated_by_id,omitempty"` // 仅在编辑后写入
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`

	// 关联关系
	Topic     Topic `gorm:"foreignKey:TopicID;references:ID"`
	CreatedBy User  `gorm:"foreignKey:CreatedByID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
