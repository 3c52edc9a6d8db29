package scope

// Manager signs and verifies bearer tokens. Safe for concurrent use.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

func New(secretKey string) (Manager, error) {
	if secretKey == "" {
		return nil, ErrEmptySecret
	}
	return &implManager{secretKey: secretKey}, nil
}
