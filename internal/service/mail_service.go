package service

import (
	"Palaver/internal/api/config"
	"context"
	"fmt"
	log "log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

type MailService interface {
	SendPasswordResetMail(ctx context.Context, to string, resetURL string) error
}

type MailServiceImpl struct {
	client *resty.Client
}

func NewMailService() MailService {
	return &MailServiceImpl{
		client: resty.New(),
	}
}

type mailPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// SendPasswordResetMail 通过 HTTP 邮件网关投递重置邮件，网关未配置时跳过
func (s *MailServiceImpl) SendPasswordResetMail(ctx context.Context, to string, resetURL string) error {
	mailCfg := config.Cfg.Mail
	if mailCfg.URL == "" {
		log.WarnContext(ctx, "mail gateway not configured, skip reset mail", "to", to)
		return nil
	}

	payload := &mailPayload{
		From:    mailCfg.From,
		To:      to,
		Subject: "重置密码",
		Text:    fmt.Sprintf("请访问以下链接重置密码：%s\n如果不是本人操作请忽略本邮件。", resetURL),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal mail payload")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+mailCfg.ApiKey).
		SetBody(body).
		Post(mailCfg.URL)
	if err != nil {
		return errors.Wrap(err, "send reset mail")
	}
	if resp.IsError() {
		return errors.Errorf("mail gateway status %d", resp.StatusCode())
	}
	return nil
}
