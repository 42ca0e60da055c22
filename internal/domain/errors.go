package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidTeamKey = errors.New("invalid team key")
	ErrForbidden      = errors.New("forbidden")
)
