package usecase

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrNotFound               = errors.New("not found")
	ErrOrganizationNotFound   = errors.New("organization not found")
	ErrInterviewNotFound      = errors.New("interview not found")
	ErrQuotaExceeded          = errors.New("maximum number of jobs for plan reached")
	ErrInvalidCVData          = errors.New("invalid cv data")
	ErrScreeningFailed        = errors.New("cv screening failed")
	ErrScreeningInProgress    = errors.New("cv screening already in progress")
	ErrDeletionNotImplemented = errors.New("application deletion is not implemented")
	ErrEmailTaken             = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
	ErrInternal               = errors.New("internal error")
)
