// Package apierr переводит доменные ошибки в ответы huma.
package apierr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"moyudiary/internal/domain/session"
)

func From(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, session.ErrNotLoggedIn):
		return huma.Error401Unauthorized("Unauthorized")
	case errors.Is(err, session.ErrBusy):
		return huma.Error409Conflict("comment request in progress")
	case errors.Is(err, session.ErrEmptyUsername), errors.Is(err, session.ErrUnknownType):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}
