package apperror

import "errors"

var (
	ErrInvalidDimensions = errors.New("invalid game dimensions")
	ErrSessionClosed     = errors.New("game session is closed")
)
