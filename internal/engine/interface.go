package engine

import (
	"context"

	"pulse-srv/internal/model"
)

// ExternalModel is a richer forecaster consulted before the trend model.
// Any error or unusable response downgrades to the trend path.
type ExternalModel interface {
	Predict(ctx context.Context, history []model.HistoryPoint, horizon int) ([]model.ForecastPoint, error)
}

// Advisor may narrate or enrich a finished decision. It is never required.
type Advisor interface {
	Advise(ctx context.Context, decision model.Decision) (Advice, error)
}

// Advice is the optional advisor output.
type Advice struct {
	Narrative string
	Actions   []model.ActionItem
}
