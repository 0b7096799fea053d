package model

import (
	"time"
)

type TopicDailyMetric struct {
	ID      uint64    `gorm:"primaryKey"`
	TopicID uint64    `gorm:"not null;uniqueIndex:idx_topic_date,priority:1" json:"topicId"`
	Date    time.Time `gorm:"type:date;not null;uniqueIndex:idx_topic_date,priority:2" json:"date"`
	Views   uint64    `gorm:"not null;default:0" json:"views"`
	Replies int64     `gorm:"not null;default:0" json:"replies"`
}

func (TopicDailyMetric) TableName() string {
	return "topic_daily_metrics"
}
