package handler_test

import (
	"Palaver/internal/model"
	"Palaver/internal/pkg/consts"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findSessionCookie(w *http.Response) *http.Cookie {
	for _, ck := range w.Cookies() {
		if ck.Name == consts.SessionCookieName {
			return ck
		}
	}
	return nil
}

func TestSignupCreatesUserAndLogsIn(t *testing.T) {
	r, db := newTestApp(t)

	w := doPost(r, "/signup/", url.Values{
		"username":  {"alice"},
		"email":     {"alice@example.com"},
		"password1": {"secret123"},
		"password2": {"secret123"},
	})

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	ck := findSessionCookie(w.Result())
	require.NotNil(t, ck)
	assert.NotEmpty(t, ck.Value)

	var user model.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	assert.Equal(t, "alice@example.com", user.Email)
	// 密码必须散列存储
	assert.NotEqual(t, "secret123", user.Password)
}

func TestSignupPasswordMismatch(t *testing.T) {
	r, db := newTestApp(t)

	w := doPost(r, "/signup/", url.Values{
		"username":  {"alice"},
		"email":     {"alice@example.com"},
		"password1": {"secret123"},
		"password2": {"secret456"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "两次输入的密码不一致")

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSignupDuplicateUsername(t *testing.T) {
	r, db := newTestApp(t)
	seedUser(t, db, "alice")

	w := doPost(r, "/signup/", url.Values{
		"username":  {"alice"},
		"email":     {"other@example.com"},
		"password1": {"secret123"},
		"password2": {"secret123"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "用户名已存在")
}

func TestLoginAndRedirectNext(t *testing.T) {
	r, db := newTestApp(t)
	seedUser(t, db, "alice")

	w := doPost(r, "/login/", url.Values{
		"username": {"alice"},
		"password": {"secret123"},
		"next":     {"/boards/1/new/"},
	})

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/boards/1/new/", w.Header().Get("Location"))
	assert.NotNil(t, findSessionCookie(w.Result()))
}

func TestLoginWrongPassword(t *testing.T) {
	r, db := newTestApp(t)
	seedUser(t, db, "alice")

	w := doPost(r, "/login/", url.Values{
		"username": {"alice"},
		"password": {"wrong-password"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "用户名或密码错误")
	assert.Nil(t, findSessionCookie(w.Result()))
}

func TestLoginUnknownUserSameError(t *testing.T) {
	r, _ := newTestApp(t)

	w := doPost(r, "/login/", url.Values{
		"username": {"nobody"},
		"password": {"whatever123"},
	})

	// 不区分用户不存在和密码错误
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "用户名或密码错误")
}

func TestLoginRejectsExternalNext(t *testing.T) {
	r, db := newTestApp(t)
	seedUser(t, db, "alice")

	w := doPost(r, "/login/", url.Values{
		"username": {"alice"},
		"password": {"secret123"},
		"next":     {"https://evil.example.com/"},
	})

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestLogoutClearsSession(t *testing.T) {
	r, db := newTestApp(t)
	user := seedUser(t, db, "alice")

	w := doPost(r, "/logout/", nil, sessionCookie(t, user))

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	ck := findSessionCookie(w.Result())
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
}

func TestPasswordChangeFlow(t *testing.T) {
	r, db := newTestApp(t)
	user := seedUser(t, db, "alice")

	// 未登录跳登录页
	w := doGet(r, "/settings/password/")
	assert.Equal(t, http.StatusFound, w.Code)

	w = doPost(r, "/settings/password/", url.Values{
		"old_password": {"secret123"},
		"password1":    {"newsecret456"},
		"password2":    {"newsecret456"},
	}, sessionCookie(t, user))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/settings/password/done/", w.Header().Get("Location"))

	// 新密码可登录
	w = doPost(r, "/login/", url.Values{
		"username": {"alice"},
		"password": {"newsecret456"},
	})
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestPasswordChangeWrongOldPassword(t *testing.T) {
	r, db := newTestApp(t)
	user := seedUser(t, db, "alice")

	w := doPost(r, "/settings/password/", url.Values{
		"old_password": {"not-the-password"},
		"password1":    {"newsecret456"},
		"password2":    {"newsecret456"},
	}, sessionCookie(t, user))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "旧密码不正确")
}

func TestPasswordResetUnknownEmailStillRedirects(t *testing.T) {
	r, _ := newTestApp(t)

	w := doPost(r, "/reset/", url.Values{
		"email": {"ghost@example.com"},
	})

	// 不暴露邮箱是否注册
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/reset/done/", w.Header().Get("Location"))
}

func TestPasswordResetInvalidTokenPage(t *testing.T) {
	r, _ := newTestApp(t)

	w := doGet(r, "/reset/confirm/not-a-real-token/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "链接无效")
}
