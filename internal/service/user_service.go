package service

import (
	"Palaver/internal/api/config"
	"Palaver/internal/api/dto"
	"Palaver/internal/model"
	"Palaver/internal/pkg/consts"
	"Palaver/internal/pkg/redis"
	"Palaver/internal/pkg/security"
	"Palaver/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const resetTokenTTL = time.Hour

type UserService interface {
	Register(ctx context.Context, form *dto.SignupForm) (string, error)
	Login(ctx context.Context, form *dto.LoginForm) (string, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, userID uint64, form *dto.PasswordChangeForm) error
	StartPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token string) (uint64, error)
	CompletePasswordReset(ctx context.Context, token string, form *dto.SetPasswordForm) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
	mailSvc  MailService
}

func NewUserService(userRepo repository.UserRepo, mailSvc MailService) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		mailSvc:  mailSvc,
	}
}

// Register 注册成功即视为已登录，直接签发 token
func (s *UserServiceImpl) Register(ctx context.Context, form *dto.SignupForm) (string, error) {
	findUser, err := s.userRepo.GetUserByUsername(ctx, form.Username)
	if err != nil {
		return "", err
	}
	if findUser != nil {
		return "", ErrUserUsernameExist
	}

	passwordHash, err := security.HashPassword(form.Password1)
	if err != nil {
		return "", err
	}

	user := &model.User{
		Username: form.Username,
		Email:    form.Email,
		Password: passwordHash,
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return security.GenerateToken(user.ID, user.Username)
}

func (s *UserServiceImpl) Login(ctx context.Context, form *dto.LoginForm) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, form.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(form.Password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}
	return security.GenerateToken(user.ID, user.Username)
}

// Logout 把 token 签名挂入黑名单，有效期覆盖 token 剩余寿命
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, true, security.JWTExpirationTime)
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, userID uint64, form *dto.PasswordChangeForm) error {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err = security.CheckPasswordHash(form.OldPassword, user.Password); err != nil {
		return ErrPasswordIncorrect
	}

	passwordHash, err := security.HashPassword(form.Password1)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, userID, passwordHash)
}

// StartPasswordReset 邮箱不存在时静默返回，避免探测注册邮箱
func (s *UserServiceImpl) StartPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		log.InfoContext(ctx, "password reset for unknown email", "email", email)
		return nil
	}

	token := uuid.NewString()
	key := consts.PasswordResetKey + token
	if err = redis.SetWithExpiration(ctx, key, strconv.FormatUint(user.ID, 10), resetTokenTTL); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset/confirm/%s/", config.Cfg.Server.BaseURL, token)
	return s.mailSvc.SendPasswordResetMail(ctx, user.Email, resetURL)
}

func (s *UserServiceImpl) ConfirmPasswordReset(ctx context.Context, token string) (uint64, error) {
	value, err := redis.GetValue(ctx, consts.PasswordResetKey+token)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, ErrResetTokenInvalid
	}
	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, ErrResetTokenInvalid
	}
	return userID, nil
}

func (s *UserServiceImpl) CompletePasswordReset(ctx context.Context, token string, form *dto.SetPasswordForm) error {
	userID, err := s.ConfirmPasswordReset(ctx, token)
	if err != nil {
		return err
	}

	passwordHash, err := security.HashPassword(form.Password1)
	if err != nil {
		return err
	}
	if err = s.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return err
	}

	// 一次性令牌，用后即焚
	return redis.DeleteKey(ctx, consts.PasswordResetKey+token)
}
