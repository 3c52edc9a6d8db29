package engine

import (
	"context"
	"fmt"

	"pulse-srv/config"
	"pulse-srv/internal/engine"
	"pulse-srv/pkg/advisor"
	"pulse-srv/pkg/extmodel"
	"pulse-srv/pkg/log"
	postgresPkg "pulse-srv/pkg/postgre"
)

// Connect builds the engine with whichever optional collaborators are enabled.
func Connect(ctx context.Context, l log.Logger, cfg *config.Config) (engine.Engine, error) {
	opts := []engine.Option{engine.WithIDGenerator(postgresPkg.NewUUID)}

	if cfg.ExternalModel.Enabled {
		m, err := extmodel.New(l, extmodel.Config{
			BaseURL:    cfg.ExternalModel.BaseURL,
			Timeout:    cfg.ExternalModel.Timeout,
			RetryCount: cfg.ExternalModel.RetryCount,
		})
		if err != nil {
			return engine.Engine{}, fmt.Errorf("failed to initialize external model: %w", err)
		}
		opts = append(opts, engine.WithExternalModel(m))
		l.Infof(ctx, "External model enabled at %s", cfg.ExternalModel.BaseURL)
	}

	if cfg.Advisor.Enabled {
		a, err := advisor.New(l, advisor.Config{
			BaseURL:   cfg.Advisor.BaseURL,
			APIKey:    cfg.Advisor.APIKey,
			Model:     cfg.Advisor.Model,
			MaxTokens: cfg.Advisor.MaxTokens,
			Timeout:   cfg.Advisor.Timeout,
		})
		if err != nil {
			return engine.Engine{}, fmt.Errorf("failed to initialize advisor: %w", err)
		}
		opts = append(opts, engine.WithAdvisor(a))
		l.Infof(ctx, "Advisor enabled with model %s", cfg.Advisor.Model)
	}

	return engine.New(EngineConfig(cfg.Engine), opts...), nil
}

// EngineConfig maps the env overrides onto the pipeline defaults.
func EngineConfig(cfg config.EngineConfig) engine.Config {
	c := engine.DefaultConfig()
	if cfg.Horizon > 0 {
		c.Horizon = cfg.Horizon
	}
	if cfg.HistoryWindow > 0 {
		c.HistoryWindow = cfg.HistoryWindow
	}
	if cfg.LengthOfStayFactor > 0 {
		c.LengthOfStayFactor = cfg.LengthOfStayFactor
	}
	if cfg.StaffRatio > 0 {
		c.StaffRatio = cfg.StaffRatio
	}
	if cfg.MinExternalPoints > 0 {
		c.MinExternalPoints = cfg.MinExternalPoints
	}
	return c
}
