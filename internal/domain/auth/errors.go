package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokensDisabled     = errors.New("token signing is not configured")
)
