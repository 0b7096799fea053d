package handler_test

import (
	"Palaver/internal/api/config"
	"Palaver/internal/model"
	"Palaver/internal/pkg/consts"
	"Palaver/internal/pkg/security"
	"Palaver/internal/wire"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testCSRFToken = "test-csrf-token"

// newTestApp 每个测试独立的内存库 + 完整路由
func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Cfg = &config.Config{}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.Board{},
		&model.User{},
		&model.Topic{},
		&model.Post{},
		&model.TopicDailyMetric{},
	)
	require.NoError(t, err)

	app, err := wire.BuildApplication(db)
	require.NoError(t, err)
	return app.Router, db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	hash, err := security.HashPassword("secret123")
	require.NoError(t, err)

	user := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: hash,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedBoard(t *testing.T, db *gorm.DB, name string) *model.Board {
	t.Helper()
	board := &model.Board{Name: name, Description: name + " 讨论区"}
	require.NoError(t, db.Create(board).Error)
	return board
}

// seedTopic 建主题并附带 postCount 条帖子，首帖不算回复
func seedTopic(t *testing.T, db *gorm.DB, board *model.Board, starter *model.User, subject string, postCount int) *model.Topic {
	t.Helper()
	now := time.Now()
	topic := &model.Topic{
		Subject:     subject,
		BoardID:     board.ID,
		StarterID:   starter.ID,
		LastUpdated: now,
		CreatedAt:   now,
	}
	require.NoError(t, db.Create(topic).Error)

	for i := 0; i < postCount; i++ {
		post := &model.Post{
			TopicID:     topic.ID,
			Message:     fmt.Sprintf("%s 的第 %d 楼", subject, i+1),
			CreatedByID: starter.ID,
			CreatedAt:   now.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, db.Create(post).Error)
	}
	return topic
}

func sessionCookie(t *testing.T, user *model.User) *http.Cookie {
	t.Helper()
	token, err := security.GenerateToken(user.ID, user.Username)
	require.NoError(t, err)
	return &http.Cookie{Name: consts.SessionCookieName, Value: token}
}

func newRecorderServe(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doGet(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doPost 自动带上匹配的 CSRF Cookie 与表单字段
func doPost(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	if form == nil {
		form = url.Values{}
	}
	form.Set(consts.CSRFFieldName, testCSRFToken)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: consts.CSRFCookieName, Value: testCSRFToken})
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
