package fiber

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"github.com/Mayinja6/mission-games-bh-server/core"
)

// errorResponse is the JSON body of every failure. Stack is filled only in
// development mode and stays an empty string in production.
type errorResponse struct {
	Message string `json:"message"`
	Stack   string `json:"stack"`
}

// NewErrorHandler returns the app-level error handler, the single
// chokepoint where every failure is rendered. Handlers and gates never
// write error bodies themselves.
func NewErrorHandler(development bool) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		resp := errorResponse{Message: err.Error()}
		if development {
			resp.Stack = string(debug.Stack())
		}
		return c.Status(statusFromError(err)).JSON(resp)
	}
}

// statusFromError maps domain errors to HTTP status codes. Errors that
// already carry a code (fiber.Error) keep it; anything unrecognized is a
// server-side failure.
func statusFromError(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	switch {
	case errors.Is(err, core.ErrNoToken),
		errors.Is(err, core.ErrInvalidToken),
		errors.Is(err, core.ErrNotAdmin):
		return fiber.StatusUnauthorized

	case errors.Is(err, core.ErrFieldsRequired),
		errors.Is(err, core.ErrUserExists),
		errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrInvalidCredentials):
		return fiber.StatusBadRequest

	default:
		return fiber.StatusInternalServerError
	}
}
