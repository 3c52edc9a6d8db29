package scope

import "github.com/golang-jwt/jwt"

// Payload is the claim set carried by access tokens.
type Payload struct {
	jwt.StandardClaims
	UserID     string `json:"sub"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	HospitalID string `json:"hospital_id,omitempty"`
}

type implManager struct {
	secretKey string
}

type (
	PayloadCtxKey struct{}
	ScopeCtxKey   struct{}
)
