package websocket

import "errors"

var (
	// ErrInvalidToken is returned when the JWT token is invalid
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrMissingToken is returned when the JWT token is missing
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidMessage is returned when the message format is invalid
	ErrInvalidMessage = errors.New("invalid message format")
	ErrInvalidChannel = errors.New("invalid channel")
	// ErrMaxConnectionsReached is returned when max connections limit is reached
	ErrMaxConnectionsReached = errors.New("maximum connections reached")
	ErrHospitalForbidden     = errors.New("hospital not accessible with this token")
	ErrHubClosed             = errors.New("hub is shut down")
)
