package repository_test

import (
	"Palaver/internal/model"
	"Palaver/internal/repository"
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
	require.NoError(t, db.AutoMigrate(&model.Board{}, &model.User{}, &model.Topic{}, &model.Post{}))
	return db
}

func seed(t *testing.T, db *gorm.DB) (*model.Board, *model.User) {
	t.Helper()
	user := &model.User{Username: "alice", Email: "alice@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)
	board := &model.Board{Name: "Golang", Description: "web"}
	require.NoError(t, db.Create(board).Error)
	return board, user
}

func TestCreateTopicWithPostIsAtomic(t *testing.T) {
	db := newTestDB(t)
	board, user := seed(t, db)
	repo := repository.NewTopicRepo(db)

	now := time.Now()
	topic := &model.Topic{
		Subject:     "hello",
		BoardID:     board.ID,
		StarterID:   user.ID,
		LastUpdated: now,
		CreatedAt:   now,
	}
	post := &model.Post{Message: "first", CreatedByID: user.ID, CreatedAt: now}

	require.NoError(t, repo.CreateTopicWithPost(context.Background(), topic, post))
	assert.NotZero(t, topic.ID)
	assert.Equal(t, topic.ID, post.TopicID)

	var postCount int64
	require.NoError(t, db.Model(&model.Post{}).Where("topic_id = ?", topic.ID).Count(&postCount).Error)
	assert.EqualValues(t, 1, postCount)
}

func TestGetTopicByBoardAndIdRequiresBothMatch(t *testing.T) {
	db := newTestDB(t)
	board, user := seed(t, db)
	other := &model.Board{Name: "Random", Description: "misc"}
	require.NoError(t, db.Create(other).Error)

	repo := repository.NewTopicRepo(db)
	now := time.Now()
	topic := &model.Topic{Subject: "hello", BoardID: board.ID, StarterID: user.ID, LastUpdated: now, CreatedAt: now}
	require.NoError(t, db.Create(topic).Error)

	found, err := repo.GetTopicByBoardAndId(context.Background(), board.ID, topic.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Golang", found.Board.Name)
	assert.Equal(t, "alice", found.Starter.Username)

	// 版块不匹配返回 nil, nil
	missing, err := repo.GetTopicByBoardAndId(context.Background(), other.ID, topic.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIncrementViewsPersists(t *testing.T) {
	db := newTestDB(t)
	board, user := seed(t, db)
	repo := repository.NewTopicRepo(db)

	now := time.Now()
	topic := &model.Topic{Subject: "hello", BoardID: board.ID, StarterID: user.ID, Views: 3, LastUpdated: now, CreatedAt: now}
	require.NoError(t, db.Create(topic).Error)

	require.NoError(t, repo.IncrementViews(context.Background(), topic.ID))

	var reloaded model.Topic
	require.NoError(t, db.First(&reloaded, topic.ID).Error)
	assert.EqualValues(t, 4, reloaded.Views)
}

func TestGetTopicsByBoardOrdersByLastUpdated(t *testing.T) {
	db := newTestDB(t)
	board, user := seed(t, db)
	repo := repository.NewTopicRepo(db)

	base := time.Now()
	for i, subject := range []string{"旧主题", "新主题", "中间主题"} {
		offsets := []time.Duration{-2 * time.Hour, 0, -time.Hour}
		topic := &model.Topic{
			Subject:     subject,
			BoardID:     board.ID,
			StarterID:   user.ID,
			LastUpdated: base.Add(offsets[i]),
			CreatedAt:   base,
		}
		require.NoError(t, db.Create(topic).Error)
	}

	topics, err := repo.GetTopicsByBoard(context.Background(), board.ID, "", 20, 0)
	require.NoError(t, err)
	require.Len(t, topics, 3)
	assert.Equal(t, "新主题", topics[0].Subject)
	assert.Equal(t, "中间主题", topics[1].Subject)
	assert.Equal(t, "旧主题", topics[2].Subject)
}

func TestCountTopicsByBoardWithKeyword(t *testing.T) {
	db := newTestDB(t)
	board, user := seed(t, db)
	repo := repository.NewTopicRepo(db)

	now := time.Now()
	for _, subject := range []string{"部署指南", "部署问题", "闲聊"} {
		require.NoError(t, db.Create(&model.Topic{
			Subject: subject, BoardID: board.ID, StarterID: user.ID, LastUpdated: now, CreatedAt: now,
		}).Error)
	}

	count, err := repo.CountTopicsByBoard(context.Background(), board.ID, "部署")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	all, err := repo.CountTopicsByBoard(context.Background(), board.ID, "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, all)
}
