package domain

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	ErrInvalidPeriod   = errors.New("invalid period")
	ErrCompanyNotFound = errors.New("company not found")
	ErrDataUnavailable = errors.New("tax data unavailable")
)
