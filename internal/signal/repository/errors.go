package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	ErrNoPoints = errors.New("no forecast points to save")
)
