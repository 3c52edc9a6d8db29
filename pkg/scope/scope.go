package scope

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"pulse-srv/internal/model"
)

func (m *implManager) Verify(token string) (Payload, error) {
	if token == "" {
		return Payload{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}
	keyFunc := func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method: %v", ErrInvalidToken, t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	}
	parsed, err := jwt.ParseWithClaims(token, &Payload{}, keyFunc)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	payload, ok := parsed.Claims.(*Payload)
	if !ok || !parsed.Valid {
		return Payload{}, fmt.Errorf("%w: bad claims", ErrInvalidToken)
	}
	return *payload, nil
}

// CreateToken signs payload with HS256. Standard claims are overwritten.
func (m *implManager) CreateToken(payload Payload) (string, error) {
	now := time.Now()
	payload.StandardClaims = jwt.StandardClaims{
		Subject:   payload.UserID,
		ExpiresAt: now.Add(TokenExpirationDuration).Unix(),
		Id:        fmt.Sprintf("%d", now.UnixNano()),
		NotBefore: now.Unix(),
		IssuedAt:  now.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString([]byte(m.secretKey))
}

// NewScope converts verified claims into the caller scope.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}
	role := payload.Role
	if role == "" {
		role = model.RoleViewer
	}
	return model.Scope{
		UserID:     userID,
		Username:   payload.Username,
		Role:       role,
		HospitalID: payload.HospitalID,
	}
}

func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, PayloadCtxKey{}, payload)
}

func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(PayloadCtxKey{}).(Payload)
	return payload, ok
}

func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ScopeCtxKey{}, sc)
}

func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ScopeCtxKey{}).(model.Scope)
	return sc, ok
}
