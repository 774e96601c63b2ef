package errorvalues

import "errors"

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired or not ready")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrInvalidPeriod      = errors.New("invalid period selector")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
