// Package advisor asks an OpenAI-compatible chat endpoint to narrate a decision.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"pulse-srv/internal/engine"
	"pulse-srv/internal/model"
	"pulse-srv/pkg/log"
)

const (
	DefaultTimeout   = 20 * time.Second
	DefaultModel     = "qwen3-32b"
	DefaultMaxTokens = 400

	completionsPath = "/chat/completions"
	systemPrompt    = "You are a hospital operations analyst. Summarize the forecast decision for the duty manager in at most four sentences. Do not invent numbers."
)

var (
	ErrBaseURLRequired = errors.New("advisor: base URL is required")
	ErrEmptyAnswer     = errors.New("advisor: empty answer")
)

type Config struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionReq struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type completionResp struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Client implements engine.Advisor.
type Client struct {
	l      log.Logger
	cfg    Config
	client *resty.Client
}

var _ engine.Advisor = &Client{}

func New(l log.Logger, cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, ErrBaseURLRequired
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := resty.New().
		SetBaseURL(base).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	return &Client{l: l, cfg: cfg, client: client}, nil
}

func (c *Client) Advise(ctx context.Context, d model.Decision) (engine.Advice, error) {
	var out completionResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(completionReq{
			Model: c.cfg.Model,
			Messages: []message{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: buildPrompt(d)},
			},
			MaxTokens:   c.cfg.MaxTokens,
			Temperature: 0.2,
		}).
		SetResult(&out).
		Post(completionsPath)
	if err != nil {
		c.l.Warnf(ctx, "pkg.advisor.Advise.Post: %v", err)
		return engine.Advice{}, fmt.Errorf("advisor: %w", err)
	}
	if resp.IsError() {
		return engine.Advice{}, fmt.Errorf("advisor: status %d", resp.StatusCode())
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return engine.Advice{}, ErrEmptyAnswer
	}

	return engine.Advice{Narrative: strings.TrimSpace(out.Choices[0].Message.Content)}, nil
}

func buildPrompt(d model.Decision) string {
	s := d.Forecast.Summary
	var b strings.Builder
	fmt.Fprintf(&b, "Facility: %s\n", d.Facility)
	fmt.Fprintf(&b, "Forecast: average %.1f admissions/day, peak %.1f on %s (model %s, scenario %s)\n",
		s.AverageAdjusted, s.PeakValue, s.PeakDate.Format("2006-01-02"), s.ModelSource, s.Scenario)
	fmt.Fprintf(&b, "Risk: %s (%d/100), surge %.1f%%, projected occupancy %.1f%%\n",
		d.Risk.Level, d.Risk.Score, d.Risk.SurgePct, d.Risk.ProjectedOccupancy)
	fmt.Fprintf(&b, "Shortage: beds gap %.1f, staff gap %.1f, severity %s\n",
		d.Shortage.BedsGap, d.Shortage.StaffGap, d.Shortage.Severity)
	fmt.Fprintf(&b, "AQI: %.0f (%s)\n", d.Pollution.AQI, d.Pollution.Category)
	if d.Epidemic.Active {
		fmt.Fprintf(&b, "Epidemic: %s (%s)\n", strings.Join(d.Epidemic.Diseases, ", "), d.Epidemic.Severity)
	}
	for _, a := range d.Actions.All() {
		fmt.Fprintf(&b, "- [%s] %s\n", a.Priority, a.Description)
	}
	return b.String()
}
