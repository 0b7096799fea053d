package service_test

import (
	"Palaver/internal/model"
	"Palaver/internal/repository"
	"Palaver/internal/service"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Board{},
		&model.User{},
		&model.Topic{},
		&model.Post{},
		&model.TopicDailyMetric{},
	))
	return db
}

func seedTopicWithPosts(t *testing.T, db *gorm.DB, views uint64, postCount int) *model.Topic {
	t.Helper()
	user := &model.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	board := &model.Board{Name: "Golang", Description: "web"}
	require.NoError(t, db.Create(board).Error)

	now := time.Now()
	topic := &model.Topic{
		Subject:     "metrics",
		BoardID:     board.ID,
		StarterID:   user.ID,
		Views:       views,
		LastUpdated: now,
		CreatedAt:   now,
	}
	require.NoError(t, db.Create(topic).Error)

	for i := 0; i < postCount; i++ {
		require.NoError(t, db.Create(&model.Post{
			TopicID:     topic.ID,
			Message:     fmt.Sprintf("post %d", i),
			CreatedByID: user.ID,
			CreatedAt:   now,
		}).Error)
	}
	return topic
}

func TestSyncTopicMetricSnapshotsViewsAndReplies(t *testing.T) {
	db := newTestDB(t)
	topic := seedTopicWithPosts(t, db, 7, 3)

	svc := service.NewTopicMetricService(
		repository.NewTopicMetricRepo(db),
		repository.NewTopicRepo(db),
		repository.NewPostRepo(db),
	)
	require.NoError(t, svc.SyncTopicMetric(context.Background(), topic.ID))

	var metric model.TopicDailyMetric
	require.NoError(t, db.Where("topic_id = ?", topic.ID).First(&metric).Error)
	assert.EqualValues(t, 7, metric.Views)
	assert.EqualValues(t, 2, metric.Replies)
}

func TestSyncTopicMetricUpsertsSameDay(t *testing.T) {
	db := newTestDB(t)
	topic := seedTopicWithPosts(t, db, 1, 1)

	svc := service.NewTopicMetricService(
		repository.NewTopicMetricRepo(db),
		repository.NewTopicRepo(db),
		repository.NewPostRepo(db),
	)
	require.NoError(t, svc.SyncTopicMetric(context.Background(), topic.ID))

	// 浏览数涨了以后当天再同步，只更新同一行
	require.NoError(t, db.Model(&model.Topic{}).Where("id = ?", topic.ID).Update("views", 9).Error)
	require.NoError(t, svc.SyncTopicMetric(context.Background(), topic.ID))

	var count int64
	require.NoError(t, db.Model(&model.TopicDailyMetric{}).Where("topic_id = ?", topic.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var metric model.TopicDailyMetric
	require.NoError(t, db.Where("topic_id = ?", topic.ID).First(&metric).Error)
	assert.EqualValues(t, 9, metric.Views)
}

func TestSyncTopicMetricMissingTopic(t *testing.T) {
	db := newTestDB(t)

	svc := service.NewTopicMetricService(
		repository.NewTopicMetricRepo(db),
		repository.NewTopicRepo(db),
		repository.NewPostRepo(db),
	)
	err := svc.SyncTopicMetric(context.Background(), 12345)
	assert.ErrorIs(t, err, service.ErrTopicNotFound)
}
