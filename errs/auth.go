package errs

import (
	"errors"
	"net/http"
)

var (
	// Unauthorized is the single response for missing sessions, bad tokens and failed
	// logins. Callers never learn which part of the attempt was wrong.
	Unauthorized = &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrUnauthorized}
)

// Authentication & Authorization Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid access token")
	ErrSeedDisabled       = errors.New("admin seeding is disabled")
)

func NewInvalidCredentialsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidCredentials,
	}
}

func NewInvalidTokenError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrUnauthorized,
		Cause:      cause,
	}
}

func NewSeedDisabledError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        ErrSeedDisabled,
	}
}

func IsInvalidCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}
