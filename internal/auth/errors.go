package auth

import "errors"

var (
	ErrInvalidCode         = errors.New("invalid one-time code")
	ErrMissingCredential   = errors.New("no credential presented")
	ErrInvalidCredential   = errors.New("credential could not be verified")
	ErrServerMisconfigured = errors.New("signing key is not configured")
)
