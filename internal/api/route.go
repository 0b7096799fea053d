package api

import (
	"Palaver/internal/api/middleware"
	"Palaver/internal/pkg/logger"
	"Palaver/internal/pkg/render"
	"Palaver/web"
	"html/template"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & 登录态 & CSRF
	r.Use(middleware.TraceMiddleware())
	logger.SetupGin(r)
	r.Use(middleware.CurrentUserMiddleware())
	r.Use(middleware.CSRFMiddleware())

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	r.NoRoute(func(c *gin.Context) {
		render.NotFound(c)
	})

	r.GET("/", group.BoardHandler.Home)
	r.GET("/boards/:board_id/", group.TopicHandler.BoardTopics)
	r.GET("/boards/:board_id/topics/:topic_id/", group.PostHandler.TopicPosts)

	r.GET("/signup/", group.UserHandler.SignupPage)
	r.POST("/signup/", group.UserHandler.Signup)
	r.GET("/login/", group.UserHandler.LoginPage)
	r.POST("/login/", group.UserHandler.Login)
	r.GET("/logout/", group.UserHandler.Logout)
	r.POST("/logout/", group.UserHandler.Logout)

	r.GET("/reset/", group.UserHandler.PasswordResetPage)
	r.POST("/reset/", group.UserHandler.PasswordReset)
	r.GET("/reset/done/", group.UserHandler.PasswordResetDone)
	r.GET("/reset/complete/", group.UserHandler.PasswordResetComplete)
	r.GET("/reset/confirm/:token/", group.UserHandler.PasswordResetConfirmPage)
	r.POST("/reset/confirm/:token/", group.UserHandler.PasswordResetConfirm)

	authGroup := r.Group("")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.GET("/boards/:board_id/new/", group.TopicHandler.NewTopicPage)
		authGroup.POST("/boards/:board_id/new/", group.TopicHandler.NewTopic)
		authGroup.GET("/boards/:board_id/topics/:topic_id/reply/", group.PostHandler.ReplyTopicPage)
		authGroup.POST("/boards/:board_id/topics/:topic_id/reply/", group.PostHandler.ReplyTopic)
		authGroup.GET("/boards/:board_id/topics/:topic_id/posts/:post_id/edit/", group.PostHandler.EditPostPage)
		authGroup.POST("/boards/:board_id/topics/:topic_id/posts/:post_id/edit/", group.PostHandler.EditPost)

		authGroup.GET("/settings/password/", group.UserHandler.PasswordChangePage)
		authGroup.POST("/settings/password/", group.UserHandler.PasswordChange)
		authGroup.GET("/settings/password/done/", group.UserHandler.PasswordChangeDone)
	}

	return r
}
