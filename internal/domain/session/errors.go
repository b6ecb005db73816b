package session

import (
	"errors"

	"moyudiary/internal/domain/moyulog"
)

var (
	ErrNotLoggedIn   = errors.New("not logged in")
	ErrBusy          = errors.New("comment request in progress")
	ErrEmptyUsername = errors.New("username is empty")
	ErrUnknownType   = moyulog.ErrUnknownType
)
