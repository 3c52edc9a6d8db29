package discord

import (
	"context"
	"errors"
	"strings"

	"github.com/go-resty/resty/v2"

	"pulse-srv/pkg/log"
)

var (
	errWebhookRequired = errors.New("discord: webhook URL is required")
	errWebhookInvalid  = errors.New("discord: webhook URL must be .../api/webhooks/{id}/{token}")
)

type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// New validates webhookURL and builds a client with the default Config.
func New(l log.Logger, webhookURL string) (IDiscord, error) {
	return NewWithConfig(l, webhookURL, DefaultConfig())
}

func NewWithConfig(l log.Logger, webhookURL string, cfg Config) (IDiscord, error) {
	webhookURL = strings.TrimSpace(webhookURL)
	if webhookURL == "" {
		return nil, errWebhookRequired
	}
	if err := validateWebhookURL(webhookURL); err != nil {
		return nil, err
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryDelay).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", UserAgent).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() == 429 || r.StatusCode() >= 500
		})

	return &discordImpl{l: l, url: webhookURL, config: cfg, client: client}, nil
}

func DefaultConfig() Config {
	return Config{
		Timeout:    DefaultTimeout,
		RetryCount: DefaultRetryCount,
		RetryDelay: DefaultRetryDelay,
		Username:   DefaultUsername,
	}
}

func validateWebhookURL(u string) error {
	i := strings.Index(u, webhookPathMarker)
	if i < 0 {
		return errWebhookInvalid
	}
	parts := strings.SplitN(u[i+len(webhookPathMarker):], "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return errWebhookInvalid
	}
	return nil
}
