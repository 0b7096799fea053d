package handler

import (
	"Palaver/internal/pkg/render"
	"Palaver/internal/service"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	boardSvc service.BoardService
}

func NewBoardHandler(boardSvc service.BoardService) *BoardHandler {
	return &BoardHandler{
		boardSvc: boardSvc,
	}
}

// Home 首页：版块列表与主题/帖子计数
func (s *BoardHandler) Home(c *gin.Context) {
	boards, err := s.boardSvc.GetBoards(c.Request.Context())
	if err != nil {
		render.Error(c, err)
		return
	}
	render.HTML(c, "home.html", gin.H{
		"Boards": boards,
	})
}
