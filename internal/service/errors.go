package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrBoardNotFound     = errors.New("版块不存在")
	ErrTopicNotFound     = errors.New("主题不存在")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserUsernameExist = errors.New("用户名已存在")
	ErrPasswordIncorrect = errors.New("用户名或密码错误")
	ErrResetTokenInvalid = errors.New("重置链接无效或已过期")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrBoardNotFound:     NotFound,
	ErrTopicNotFound:     NotFound,
	ErrPostNotFound:      NotFound,
	ErrUserNotFound:      NotFound,
	ErrUserUsernameExist: BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrResetTokenInvalid: BadRequest,
	UnExpectedError:      InternalServerError,
}
