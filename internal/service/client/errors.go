package client

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidClientID       = errors.New("invalid client id")
	ErrInvalidNationalID     = errors.New("invalid national id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidZone           = errors.New("invalid zone")

	ErrClientNotFound = errors.New("client not found")
	ErrConflict       = errors.New("client with this national id already exists")
)
