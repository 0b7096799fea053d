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

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// topicPath 解析路径中的版块与主题 ID，非数字一律 404
func topicPath(c *gin.Context) (uint64, uint64, bool) {
	boardID, err := strconv.ParseUint(c.Param("board_id"), 10, 64)
	if err != nil {
		render.NotFound(c)
		return 0, 0, false
	}
	topicID, err := strconv.ParseUint(c.Param("topic_id"), 10, 64)
	if err != nil {
		render.NotFound(c)
		return 0, 0, false
	}
	return boardID, topicID, true
}

// TopicPosts 主题详情页，每次访问浏览数加一
func (s *PostHandler) TopicPosts(c *gin.Context) {
	boardID, topicID, ok := topicPath(c)
	if !ok {
		return
	}

	data, err := s.postSvc.GetTopicPosts(c.Request.Context(), boardID, topicID, c.Query("page"))
	if err != nil {
		render.Error(c, err)
		return
	}

	render.HTML(c, "topic_posts.html", gin.H{
		"Board":      data.Board,
		"Topic":      data.Topic,
		"Posts":      data.Posts,
		"Pagination": data.Pagination,
	})
}

// ReplyTopicPage 回帖表单页
func (s *PostHandler) ReplyTopicPage(c *gin.Context) {
	boardID, topicID, ok := topicPath(c)
	if !ok {
		return
	}

	board, topic, err := s.postSvc.GetTopicSummary(c.Request.Context(), boardID, topicID)
	if err != nil {
		render.Error(c, err)
		return
	}

	render.HTML(c, "reply_topic.html", gin.H{
		"Board": board,
		"Topic": topic,
		"Form":  &dto.ReplyForm{},
	})
}

// ReplyTopic 提交回帖，成功后跳到回帖所在页
func (s *PostHandler) ReplyTopic(c *gin.Context) {
	boardID, topicID, ok := topicPath(c)
	if !ok {
		return
	}
	userID := c.GetUint64("user_id")

	var form dto.ReplyForm
	if err := c.ShouldBind(&form); err != nil {
		render.Error(c, err)
		return
	}

	if fieldErrors := util.ValidateForm(&form); fieldErrors != nil {
		board, topic, err := s.postSvc.GetTopicSummary(c.Request.Context(), boardID, topicID)
		if err != nil {
			render.Error(c, err)
			return
		}
		render.HTML(c, "reply_topic.html", gin.H{
			"Board":  board,
			"Topic":  topic,
			"Form":   &form,
			"Errors": fieldErrors,
		})
		return
	}

	lastPage, err := s.postSvc.CreateReply(c.Request.Context(), userID, boardID, topicID, &form)
	if err != nil {
		render.Error(c, err)
		return
	}

	render.Redirect(c, fmt.Sprintf("/boards/%d/topics/%d/?page=%d", boardID, topicID, lastPage))
}

// EditPostPage 编辑帖子表单页，只有作者可见
func (s *PostHandler) EditPostPage(c *gin.Context) {
	boardID, topicID, ok := topicPath(c)
	if !ok {
		return
	}
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		render.NotFound(c)
		return
	}
	userID := c.GetUint64("user_id")

	edit, err := s.postSvc.GetPostForEdit(c.Request.Context(), userID, boardID, topicID, postID)
	if err != nil {
		render.Error(c, err)
		return
	}

	render.HTML(c, "edit_post.html", gin.H{
		"Edit": edit,
		"Form": &dto.ReplyForm{Message: edit.Message},
	})
}

// EditPost 保存帖子修改
func (s *PostHandler) EditPost(c *gin.Context) {
	boardID, topicID, ok := topicPath(c)
	if !ok {
		return
	}
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		render.NotFound(c)
		return
	}
	userID := c.GetUint64("user_id")

	var form dto.ReplyForm
	if err = c.ShouldBind(&form); err != nil {
		render.Error(c, err)
		return
	}

	if fieldErrors := util.ValidateForm(&form); fieldErrors != nil {
		edit, editErr := s.postSvc.GetPostForEdit(c.Request.Context(), userID, boardID, topicID, postID)
		if editErr != nil {
			render.Error(c, editErr)
			return
		}
		render.HTML(c, "edit_post.html", gin.H{
			"Edit":   edit,
			"Form":   &form,
			"Errors": fieldErrors,
		})
		return
	}

	_, err = s.postSvc.UpdatePost(c.Request.Context(), userID, boardID, topicID, postID, &form)
	if err != nil {
		render.Error(c, err)
		return
	}

	render.Redirect(c, fmt.Sprintf("/boards/%d/topics/%d/", boardID, topicID))
}
