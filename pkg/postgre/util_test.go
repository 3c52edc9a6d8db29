package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUUID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{name: "generated", in: NewUUID()},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "alert-1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IsUUID(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUUID)
				return
			}
			assert.NoError(t, err)
		})
	}
}
