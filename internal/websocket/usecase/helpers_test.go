package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pulse-srv/internal/websocket"
)

func TestParseChannel(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		want    ParsedChannel
		wantErr error
	}{
		{
			name:    "alert",
			channel: "alert:H1:critical",
			want:    ParsedChannel{ChannelType: websocket.ChannelTypeAlert, HospitalID: "H1", SubType: "critical"},
		},
		{
			name:    "system",
			channel: "system:maintenance",
			want:    ParsedChannel{ChannelType: websocket.ChannelTypeSystem, SubType: "maintenance"},
		},
		{name: "alert missing severity", channel: "alert:H1", wantErr: websocket.ErrInvalidChannel},
		{name: "alert empty hospital", channel: "alert::high", wantErr: websocket.ErrInvalidChannel},
		{name: "alert extra segment", channel: "alert:H1:high:user:1", wantErr: websocket.ErrInvalidChannel},
		{name: "unknown prefix", channel: "campaign:1", wantErr: websocket.ErrInvalidChannel},
		{name: "single segment", channel: "alert", wantErr: websocket.ErrInvalidChannel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseChannel(tt.channel)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
