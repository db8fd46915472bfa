package admin

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("booking not found")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
