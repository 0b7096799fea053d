package middleware

import (
	"Palaver/internal/pkg/consts"
	"Palaver/internal/pkg/redis"
	"Palaver/internal/pkg/security"
	"context"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

// CurrentUser 注入模板与处理器的当前登录用户
type CurrentUser struct {
	ID       uint64
	Username string
}

// resolveUser 从会话 Cookie 解析当前用户，黑名单中的 token 一律视为未登录
func resolveUser(c *gin.Context) (*CurrentUser, bool) {
	token, err := c.Cookie(consts.SessionCookieName)
	if err != nil || token == "" {
		return nil, false
	}

	signature, err := security.ExtractSignature(token)
	if err != nil {
		return nil, false
	}
	value, err := redis.GetValue(c.Request.Context(), consts.TokenDenyKey+signature)
	if err != nil || value != "" {
		return nil, false
	}

	claims, err := security.ValidateToken(token)
	if err != nil {
		return nil, false
	}
	return &CurrentUser{ID: claims.UserID, Username: claims.Username}, true
}

// CurrentUserMiddleware 可选登录态，匿名访问照常放行
func CurrentUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := resolveUser(c); ok {
			c.Set("user", user)
			c.Set("user_id", user.ID)

			newCtx := context.WithValue(c.Request.Context(), "user_id", user.ID)
			c.Request = c.Request.WithContext(newCtx)
		}
		c.Next()
	}
}

// AuthMiddleware 强制登录，未登录跳转登录页并携带回跳地址
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get("user"); ok {
			c.Next()
			return
		}

		next := url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, "/login/?next="+next)
		c.Abort()
	}
}
