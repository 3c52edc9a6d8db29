package scope

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-srv/internal/model"
)

func TestNew_EmptySecret(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestManager_RoundTrip(t *testing.T) {
	m, err := New("secret")
	require.NoError(t, err)

	token, err := m.CreateToken(Payload{UserID: "u1", Username: "nurse.lead", Role: model.RolePlanner, HospitalID: "H1"})
	require.NoError(t, err)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "H1", p.HospitalID)

	sc := NewScope(p)
	assert.True(t, sc.CanResolveAlerts())
	assert.True(t, sc.CanAccessHospital("H1"))
	assert.False(t, sc.CanAccessHospital("H2"))
}

func TestManager_Verify(t *testing.T) {
	m, _ := New("secret")
	other, _ := New("other")
	foreign, err := other.CreateToken(Payload{UserID: "u1"})
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Payload{UserID: "u1"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"empty":         "",
		"garbage":       "not.a.token",
		"wrong secret":  foreign,
		"unsigned none": none,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.Verify(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewScope_Defaults(t *testing.T) {
	sc := NewScope(Payload{StandardClaims: jwt.StandardClaims{Subject: "u9"}})
	assert.Equal(t, "u9", sc.UserID)
	assert.Equal(t, model.RoleViewer, sc.Role)
	assert.False(t, sc.CanResolveAlerts())
}

func TestContext(t *testing.T) {
	ctx := SetScopeToContext(context.Background(), model.Scope{UserID: "u1"})
	sc, ok := GetScopeFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", sc.UserID)

	_, ok = GetPayloadFromContext(ctx)
	assert.False(t, ok)
}
