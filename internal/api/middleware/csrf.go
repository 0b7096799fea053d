package middleware

import (
	"Palaver/internal/pkg/consts"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func newCSRFToken() string {
	return uuid.NewString()
}

// CSRFMiddleware 双提交 Cookie 校验：表单里的令牌必须与 Cookie 一致
func CSRFMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(consts.CSRFCookieName)
		if err != nil || token == "" {
			token = newCSRFToken()
			c.SetCookie(consts.CSRFCookieName, token, 0, "/", "", false, false)
		}
		c.Set(consts.CSRFFieldName, token)

		if c.Request.Method == http.MethodPost {
			if c.PostForm(consts.CSRFFieldName) != token {
				c.String(http.StatusForbidden, "CSRF verification failed")
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
