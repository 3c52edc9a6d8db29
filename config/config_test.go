package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", testSecret)
	t.Setenv("SCHEDULER_SCOPES", "H1:ED,H1:ICU")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 7, cfg.Engine.Horizon)
	assert.Equal(t, 0.4, cfg.Engine.LengthOfStayFactor)
	assert.Equal(t, 6*time.Hour, cfg.Scheduler.Interval)
	assert.Equal(t, []string{"H1:ED", "H1:ICU"}, cfg.Scheduler.Scopes)
	assert.Equal(t, "pulse-reports", cfg.Report.Bucket)
	assert.False(t, cfg.ExternalModel.Enabled)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "missing secret", env: map[string]string{"JWT_SECRET_KEY": ""}, wantErr: "JWT_SECRET_KEY is required"},
		{name: "short secret", env: map[string]string{"JWT_SECRET_KEY": "short"}, wantErr: "at least 32"},
		{
			name:    "external model without url",
			env:     map[string]string{"JWT_SECRET_KEY": testSecret, "EXTERNAL_MODEL_ENABLED": "true"},
			wantErr: "EXTERNAL_MODEL_URL",
		},
		{
			name:    "advisor without key",
			env:     map[string]string{"JWT_SECRET_KEY": testSecret, "ADVISOR_ENABLED": "true", "ADVISOR_URL": "http://llm"},
			wantErr: "ADVISOR_API_KEY",
		},
		{
			name:    "bad scope",
			env:     map[string]string{"JWT_SECRET_KEY": testSecret, "SCHEDULER_SCOPES": "H1-ED"},
			wantErr: "HOSPITAL:DEPARTMENT",
		},
		{
			name:    "bad duration",
			env:     map[string]string{"JWT_SECRET_KEY": testSecret, "SCHEDULER_INTERVAL": "often"},
			wantErr: "parse env",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
