package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHomeListsBoards(t *testing.T) {
	r, db := newTestApp(t)
	user := seedUser(t, db, "alice")
	board := seedBoard(t, db, "Golang")
	seedTopic(t, db, board, user, "欢迎", 3)
	seedBoard(t, db, "Random")

	w := doGet(r, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Golang")
	assert.Contains(t, body, "Random")
	assert.Contains(t, body, fmt.Sprintf(`href="/boards/%d/"`, board.ID))
}

func TestHomeShowsTopicAndPostCounts(t *testing.T) {
	r, db := newTestApp(t)
	user := seedUser(t, db, "alice")
	board := seedBoard(t, db, "Golang")
	seedTopic(t, db, board, user, "主题一", 2)
	seedTopic(t, db, board, user, "主题二", 3)

	w := doGet(r, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	// 2 个主题，共 5 条帖子
	assert.Contains(t, w.Body.String(), "<td>2</td>")
	assert.Contains(t, w.Body.String(), "<td>5</td>")
}

func TestHomeEmpty(t *testing.T) {
	r, _ := newTestApp(t)

	w := doGet(r, "/")

	assert.Equal(t, http.StatusOK, w.Code)
}
