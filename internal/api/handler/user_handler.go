package handler

import (
	"Palaver/internal/api/dto"
	"Palaver/internal/pkg/consts"
	"Palaver/internal/pkg/render"
	"Palaver/internal/pkg/security"
	"Palaver/internal/pkg/util"
	"Palaver/internal/service"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(consts.SessionCookieName, token, int(security.JWTExpirationTime.Seconds()), "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(consts.SessionCookieName, "", -1, "/", "", false, true)
}

// safeNext 回跳地址只允许站内路径，防开放重定向
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

// SignupPage 注册表单页
func (s *UserHandler) SignupPage(c *gin.Context) {
	render.HTML(c, "signup.html", gin.H{
		"Form": &dto.SignupForm{},
	})
}

// Signup 注册成功即登录并跳首页
func (s *UserHandler) Signup(c *gin.Context) {
	var form dto.SignupForm
	if err := c.ShouldBind(&form); err != nil {
		render.Error(c, err)
		return
	}

	fieldErrors := util.ValidateForm(&form)
	if fieldErrors == nil {
		token, err := s.userSvc.Register(c.Request.Context(), &form)
		if err == nil {
			setSessionCookie(c, token)
			render.Redirect(c, "/")
			return
		}
		if !errors.Is(err, service.ErrUserUsernameExist) {
			render.Error(c, err)
			return
		}
		fieldErrors = map[string]string{"username": err.Error()}
	}

	render.HTML(c, "signup.html", gin.H{
		"Form":   &form,
		"Errors": fieldErrors,
	})
}

// LoginPage 登录表单页
func (s *UserHandler) LoginPage(c *gin.Context) {
	render.HTML(c, "login.html", gin.H{
		"Form": &dto.LoginForm{Next: c.Query("next")},
	})
}

func (s *UserHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		render.Error(c, err)
		return
	}

	fieldErrors := util.ValidateForm(&form)
	if fieldErrors == nil {
		token, err := s.userSvc.Login(c.Request.Context(), &form)
		if err == nil {
			setSessionCookie(c, token)
			render.Redirect(c, safeNext(form.Next))
			return
		}
		if !errors.Is(err, service.ErrPasswordIncorrect) {
			render.Error(c, err)
			return
		}
		fieldErrors = map[string]string{"__all__": err.Error()}
	}

	render.HTML(c, "login.html", gin.H{
		"Form":   &form,
		"Errors": fieldErrors,
	})
}

// Logout 吊销当前 token 并清除会话 Cookie
func (s *UserHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(consts.SessionCookieName)
	if err == nil && token != "" {
		if err = s.userSvc.Logout(c.Request.Context(), token); err != nil {
			render.Error(c, err)
			return
		}
	}
	clearSessionCookie(c)
	render.Redirect(c, "/")
}

// PasswordResetPage 输入邮箱发起重置
func (s *UserHandler) PasswordResetPage(c *gin.Context) {
	render.HTML(c, "password_reset.html", gin.H{
		"Form": &dto.PasswordResetForm{},
	})
}

func (s *UserHandler) PasswordReset(c *gin.Context) {
	var form dto.PasswordResetForm
	if err := c.ShouldBind(&form); err != nil {
		render.Error(c, err)
		return
	}

	if fieldErrors := util.ValidateForm(&form); fieldErrors != nil {
		render.HTML(c, "password_reset.html", gin.H{
			"Form":   &form,
			"Errors": fieldErrors,
		})
		return
	}

	if err := s.userSvc.StartPasswordReset(c.Request.Context(), form.Email); err != nil {
		render.Error(c, err)
		return
	}
	render.Redirect(c, "/reset/done/")
}

func (s *UserHandler) PasswordResetDone(c *gin.Context) {
	render.HTML(c, "password_reset_done.html", nil)
}

// PasswordResetConfirmPage 校验邮件里的令牌并展示新密码表单
func (s *UserHandler) PasswordResetConfirmPage(c *gin.Context) {
	token := c.Param("token")
	if _, err := s.userSvc.ConfirmPasswordReset(c.Request.Context(), token); err != nil {
		render.HTML(c, "password_reset_confirm.html", gin.H{
			"TokenValid": false,
		})
		return
	}
	render.HTML(c, "password_reset_confirm.html", gin.H{
		"TokenValid": true,
		"Token":      token,
		"Form":       &dto.SetPasswordForm{},
	})
}

func (s *UserHandler) PasswordResetConfirm(c *gin.Context) {
	token := c.Param("token")

	var form dto.SetPasswordForm
	if err := c.ShouldBind(&form); err != nil {
		render.Error(c, err)
		return
	}

	if fieldErrors := util.ValidateForm(&form); fieldErrors != nil {
		render.HTML(c, "password_reset_confirm.html", gin.H{
			"TokenValid": true,
			"Token":      token,
			"Form":       &form,
			"Errors":     fieldErrors,
		})
		return
	}

	if err := s.userSvc.CompletePasswordReset(c.Request.Context(), token, &form); err != nil {
		if errors.Is(err, service.ErrResetTokenInvalid) {
			render.HTML(c, "password_reset_confirm.html", gin.H{
				"TokenValid": false,
			})
			return
		}
		render.Error(c, err)
		return
	}
	render.Redirect(c, "/reset/complete/")
}

func (s *UserHandler) PasswordResetComplete(c *gin.Context) {
	render.HTML(c, "password_reset_complete.html", nil)
}

// PasswordChangePage 登录状态下修改密码
func (s *UserHandler) PasswordChangePage(c *gin.Context) {
	render.HTML(c, "password_change.html", gin.H{
		"Form": &dto.PasswordChangeForm{},
	})
}

func (s *UserHandler) PasswordChange(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var form dto.PasswordChangeForm
	if err := c.ShouldBind(&form); err != nil {
		render.Error(c, err)
		return
	}

	fieldErrors := util.ValidateForm(&form)
	if fieldErrors == nil {
		err := s.userSvc.ChangePassword(c.Request.Context(), userID, &form)
		if err == nil {
			render.Redirect(c, "/settings/password/done/")
			return
		}
		if !errors.Is(err, service.ErrPasswordIncorrect) {
			render.Error(c, err)
			return
		}
		fieldErrors = map[string]string{"old_password": "旧密码不正确"}
	}

	render.HTML(c, "password_change.html", gin.H{
		"Form":   &form,
		"Errors": fieldErrors,
	})
}

func (s *UserHandler) PasswordChangeDone(c *gin.Context) {
	render.HTML(c, "password_change_done.html", nil)
}
