package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RedisConfig
		wantErr error
	}{
		{name: "missing host", cfg: RedisConfig{Port: 6379}, wantErr: ErrHostRequired},
		{name: "zero port", cfg: RedisConfig{Host: "localhost"}, wantErr: ErrInvalidPort},
		{name: "port out of range", cfg: RedisConfig{Host: "localhost", Port: 70000}, wantErr: ErrInvalidPort},
		{name: "bad db", cfg: RedisConfig{Host: "localhost", Port: 6379, DB: 16}, wantErr: ErrInvalidDB},
		{name: "valid", cfg: RedisConfig{Host: "localhost", Port: 6379, DB: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, tt.cfg.validate())
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	r, err := New(RedisConfig{Port: 6379})
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrHostRequired)
}
