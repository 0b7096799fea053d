package handler

import (
	"Palaver/internal/api/dto"
	"Palaver/internal/pkg/render"
	"Palaver/internal/pkg/util"
	"Palaver/internal/service"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	topicSvc service.TopicService
}

func NewTopicHandler(topicSvc service.TopicService) *TopicHandler {
	return &TopicHandler{
		topicSvc: topicSvc,
	}
}

// BoardTopics 版块主题列表，支持 ?q= 搜索与 ?page= 分页
func (s *TopicHandler) BoardTopics(c *gin.Context) {
	boardID, err := strconv.ParseUint(c.Param("board_id"), 10, 64)
	if err != nil {
		render.NotFound(c)
		return
	}

	data, err := s.topicSvc.GetBoardTopics(c.Request.Context(), boardID, c.Query("q"), c.Query("page"))
	if err != nil {
		render.Error(c, err)
		return
	}

	render.HTML(c, "topics.html", gin.H{
		"Board":      data.Board,
		"Topics":     data.Topics,
		"Keyword":    data.Keyword,
		"Pagination": data.Pagination,
	})
}

// NewTopicPage 新建主题表单页
func (s *TopicHandler) NewTopicPage(c *gin.Context) {
	boardID, err := strconv.ParseUint(c.Param("board_id"), 10, 64)
	if err != nil {
		render.NotFound(c)
		return
	}

	board, err := s.topicSvc.GetBoard(c.Request.Context(), boardID)
	if err != nil {
		render.Error(c, err)
		return
	}

	render.HTML(c, "new_topic.html", gin.H{
		"Board": board,
		"Form":  &dto.NewTopicForm{},
	})
}

// NewTopic 创建主题，校验失败时带着错误信息回显表单
func (s *TopicHandler) NewTopic(c *gin.Context) {
	boardID, err := strconv.ParseUint(c.Param("board_id"), 10, 64)
	if err != nil {
		render.NotFound(c)
		return
	}
	userID := c.GetUint64("user_id")

	var form dto.NewTopicForm
	if err = c.ShouldBind(&form); err != nil {
		render.Error(c, err)
		return
	}

	if fieldErrors := util.ValidateForm(&form); fieldErrors != nil {
		board, boardErr := s.topicSvc.GetBoard(c.Request.Context(), boardID)
		if boardErr != nil {
			render.Error(c, boardErr)
			return
		}
		render.HTML(c, "new_topic.html", gin.H{
			"Board":  board,
			"Form":   &form,
			"Errors": fieldErrors,
		})
		return
	}

	topicID, err := s.topicSvc.CreateTopic(c.Request.Context(), userID, boardID, &form)
	if err != nil {
		render.Error(c, err)
		return
	}

	render.Redirect(c, fmt.Sprintf("/boards/%d/topics/%d/", boardID, topicID))
}
