package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-srv/internal/model"
)

func TestShortageEstimator_Estimate(t *testing.T) {
	est := NewShortageEstimator(DefaultConfig())

	tests := []struct {
		name         string
		in           ShortageInput
		wantBeds     float64
		wantStaff    float64
		wantSeverity model.ShortageSeverity
		wantUnknown  []string
	}{
		{
			name:         "surplus stays negative",
			in:           ShortageInput{PredictedInflow: 50, AvailableBeds: 200, StaffOnShift: 60},
			wantBeds:     -180,
			wantStaff:    -50,
			wantSeverity: model.ShortageLow,
		},
		{
			name:         "medium",
			in:           ShortageInput{PredictedInflow: 300, AvailableBeds: 100, StaffOnShift: 50},
			wantBeds:     20,
			wantStaff:    10,
			wantSeverity: model.ShortageMedium,
		},
		{
			name:         "high",
			in:           ShortageInput{PredictedInflow: 100, AvailableBeds: 10, StaffOnShift: 5},
			wantBeds:     30,
			wantStaff:    15,
			wantSeverity: model.ShortageHigh,
		},
		{
			name:         "no beds available",
			in:           ShortageInput{PredictedInflow: 1, AvailableBeds: 0, StaffOnShift: 0},
			wantBeds:     0.4,
			wantStaff:    0.2,
			wantSeverity: model.ShortageHigh,
		},
		{
			name:         "all zero",
			in:           ShortageInput{},
			wantSeverity: model.ShortageLow,
		},
		{
			name:         "staff unknown uses beds only",
			in:           ShortageInput{PredictedInflow: 100, AvailableBeds: 10, StaffUnknown: true},
			wantBeds:     30,
			wantSeverity: model.ShortageHigh,
			wantUnknown:  []string{model.CapacityStaff},
		},
		{
			name:         "beds unknown scales by staff",
			in:           ShortageInput{PredictedInflow: 100, StaffOnShift: 100, BedsUnknown: true},
			wantStaff:    -80,
			wantSeverity: model.ShortageLow,
			wantUnknown:  []string{model.CapacityBeds},
		},
		{
			name:         "nothing known",
			in:           ShortageInput{PredictedInflow: 100, BedsUnknown: true, StaffUnknown: true},
			wantSeverity: model.ShortageLow,
			wantUnknown:  []string{model.CapacityBeds, model.CapacityStaff},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := est.Estimate(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantBeds, got.BedsGap, 1e-9)
			assert.InDelta(t, tt.wantStaff, got.StaffGap, 1e-9)
			assert.Equal(t, tt.wantSeverity, got.Severity)
			assert.Equal(t, tt.wantUnknown, got.UnknownCapacity)
		})
	}
}

func TestShortageEstimator_SurplusHasSlack(t *testing.T) {
	got, err := NewShortageEstimator(DefaultConfig()).Estimate(ShortageInput{PredictedInflow: 50, AvailableBeds: 200, StaffOnShift: 60})
	require.NoError(t, err)
	assert.True(t, got.HasSlack())
}

func TestShortageEstimator_SupplyGaps(t *testing.T) {
	got, err := NewShortageEstimator(DefaultConfig()).Estimate(ShortageInput{
		PredictedInflow: 10,
		AvailableBeds:   50,
		StaffOnShift:    10,
		Inventory: []model.InventoryItem{
			{ItemName: "masks", CurrentStock: 40, MinThreshold: 100},
			{ItemName: "gloves", CurrentStock: 500, MinThreshold: 100},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"masks": 60}, got.SupplyGaps)
}

func TestShortageEstimator_InvalidInput(t *testing.T) {
	est := NewShortageEstimator(DefaultConfig())

	for _, in := range []ShortageInput{
		{PredictedInflow: -1},
		{AvailableBeds: -1},
		{StaffOnShift: -2},
		{Inventory: []model.InventoryItem{{ItemName: "saline", MinThreshold: -1}}},
	} {
		_, err := est.Estimate(in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestShortageEstimator_UnknownHasNoSlack(t *testing.T) {
	got, err := NewShortageEstimator(DefaultConfig()).Estimate(ShortageInput{PredictedInflow: 10, BedsUnknown: true, StaffUnknown: true})
	require.NoError(t, err)
	assert.False(t, got.HasSlack())
}
