package repository

import (
	"context"

	"pulse-srv/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	ListAdmissions(ctx context.Context, opts RangeOptions) ([]model.HistoryPoint, error)
	ListAQI(ctx context.Context, opts RangeOptions) ([]model.AQIReading, error)
	ListBeds(ctx context.Context, opts RangeOptions) ([]model.BedReading, error)
	ListWeather(ctx context.Context, opts RangeOptions) ([]model.WeatherReading, error)
	ListEvents(ctx context.Context, opts RangeOptions) ([]model.EventDay, error)
	ListFestivals(ctx context.Context, opts RangeOptions) ([]model.Festival, error)
	ListInventory(ctx context.Context, hospitalID string) ([]model.InventoryItem, error)
	LatestSnapshot(ctx context.Context, hospitalID string) (model.ResourceSnapshot, error)
	LatestContext(ctx context.Context, hospitalID string) (model.ContextSignal, error)

	SaveForecast(ctx context.Context, opts SaveForecastOptions) error
	SaveShortage(ctx context.Context, opts SaveShortageOptions) error
}
