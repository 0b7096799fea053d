package render

import (
	"Palaver/internal/pkg/consts"
	"Palaver/internal/service"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTML 渲染页面，自动注入当前用户与 CSRF Token
func HTML(c *gin.Context, name string, data gin.H) {
	HTMLStatus(c, http.StatusOK, name, data)
}

func HTMLStatus(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if user, ok := c.Get("user"); ok {
		data["User"] = user
	}
	if _, ok := data["CSRFToken"]; !ok {
		data["CSRFToken"] = c.GetString(consts.CSRFFieldName)
	}
	c.HTML(status, name, data)
}

// Redirect 302 跳转
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// NotFound 404 页面
func NotFound(c *gin.Context) {
	HTMLStatus(c, http.StatusNotFound, "404.html", gin.H{})
	c.Abort()
}

// Error 处理业务错误：NotFound 类渲染 404，其余渲染 500
func Error(c *gin.Context, err error) {
	code, ok := service.ErrorMap[err]
	if !ok {
		code = service.InternalServerError
	}

	if code == service.NotFound {
		NotFound(c)
		return
	}

	if code == service.InternalServerError {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
	}
	HTMLStatus(c, http.StatusInternalServerError, "500.html", gin.H{})
	c.Abort()
}
