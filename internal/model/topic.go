package model

import (
	"time"
)

type Topic struct {
	ID          uint64    `gorm:"primaryKey"`
	Subject     string    `gorm:"type:varchar(255);not null" json:"subject"`
	BoardID     uint64    `gorm:"not null;index:idx_board_id" json:"board_id"`
	StarterID   uint64    `gorm:"not null" json:"starter_id"`
	Views       uint64    `gorm:"not null;default:0" json:"views"`
	LastUpdated time.Time `gorm:"not null;index:idx_last_updated" json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`

	// 关联关系
	Board   Board  `gorm:"foreignKey:BoardID;references:ID"`
	Starter User   `gorm:"foreignKey:StarterID;references:ID"`
	Posts   []Post `gorm:"foreignKey:TopicID;references:ID"`
}

func (Topic) TableName() string {
	return "topics"
}
