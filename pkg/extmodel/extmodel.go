// Package extmodel calls a Prophet-style forecasting service over HTTP.
package extmodel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"pulse-srv/internal/model"
	"pulse-srv/pkg/log"
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 1
	predictPath       = "/predict"
	dateLayout        = "2006-01-02"
)

var (
	ErrBaseURLRequired = errors.New("extmodel: base URL is required")
	ErrBadResponse     = errors.New("extmodel: bad response")
)

// Config tunes the client.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
}

// Client satisfies the engine's external model contract.
type Client struct {
	l      log.Logger
	client *resty.Client
}

type predictPoint struct {
	DS string  `json:"ds"`
	Y  float64 `json:"y"`
}

type predictReq struct {
	History []predictPoint `json:"history"`
	Periods int            `json:"periods"`
}

type forecastRow struct {
	DS        string  `json:"ds"`
	YHat      float64 `json:"yhat"`
	YHatLower float64 `json:"yhat_lower"`
	YHatUpper float64 `json:"yhat_upper"`
}

type predictResp struct {
	Forecast []forecastRow `json:"forecast"`
}

func New(l log.Logger, cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, ErrBaseURLRequired
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryCount < 0 {
		cfg.RetryCount = DefaultRetryCount
	}

	client := resty.New().
		SetBaseURL(base).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{l: l, client: client}, nil
}

// Predict returns exactly horizon points or an error.
func (c *Client) Predict(ctx context.Context, history []model.HistoryPoint, horizon int) ([]model.ForecastPoint, error) {
	req := predictReq{History: make([]predictPoint, len(history)), Periods: horizon}
	for i, h := range history {
		req.History[i] = predictPoint{DS: h.Date.UTC().Format(dateLayout), Y: h.Count}
	}

	var out predictResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(predictPath)
	if err != nil {
		c.l.Warnf(ctx, "pkg.extmodel.Predict.Post: %v", err)
		return nil, fmt.Errorf("extmodel: predict: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode())
	}
	if len(out.Forecast) < horizon {
		return nil, fmt.Errorf("%w: %d points for horizon %d", ErrBadResponse, len(out.Forecast), horizon)
	}

	points := make([]model.ForecastPoint, horizon)
	for i, r := range out.Forecast[:horizon] {
		date, err := time.Parse(dateLayout, r.DS[:min(len(r.DS), len(dateLayout))])
		if err != nil {
			return nil, fmt.Errorf("%w: date %q", ErrBadResponse, r.DS)
		}
		points[i] = model.ForecastPoint{
			Date:           date,
			BaselineValue:  r.YHat,
			AdjustedValue:  r.YHat,
			ConfidenceLow:  r.YHatLower,
			ConfidenceHigh: r.YHatUpper,
		}
	}
	return points, nil
}
