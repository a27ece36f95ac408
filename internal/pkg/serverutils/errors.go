// FILE: internal/pkg/serverutils/errors.go
package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// APIError is the handler-level error taxonomy. Every failure a controller or
// service surfaces is one of these so the error middleware can render a
// structured JSON body with the right status code.
type APIError struct {
	Status  int
	Message string
	Hint    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewInputError -> 400, message surfaced verbatim to the caller.
func NewInputError(message string) *APIError {
	return &APIError{Status: fiber.StatusBadRequest, Message: message}
}

// NewAuthError -> 401. Callers get a generic message, no detail.
func NewAuthError(message string) *APIError {
	return &APIError{Status: fiber.StatusUnauthorized, Message: message}
}

// NewMethodError -> 405.
func NewMethodError() *APIError {
	return &APIError{Status: fiber.StatusMethodNotAllowed, Message: "Method not allowed"}
}

// NewConfigError -> 500, with a hint pointing at the missing resource.
func NewConfigError(message, hint string) *APIError {
	return &APIError{Status: fiber.StatusInternalServerError, Message: message, Hint: hint}
}

// NewUpstreamError relays a collaborator failure. A zero status maps to 502.
func NewUpstreamError(status int, message string) *APIError {
	if status == 0 {
		status = fiber.StatusBadGateway
	}
	return &APIError{Status: status, Message: message}
}

// ErrorHandlerMiddleware converts every error escaping a handler into a
// structured JSON body. No handler is allowed to leak an opaque empty 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var apiErr *APIError
		if errors.As(err, &apiErr) {
			body := fiber.Map{
				"success": false,
				"code":    apiErr.Status,
				"error":   apiErr.Message,
			}
			if apiErr.Hint != "" {
				body["hint"] = apiErr.Hint
			}
			return ctx.Status(apiErr.Status).JSON(body)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"success": false,
				"code":    fiberErr.Code,
				"error":   fiberErr.Message,
			})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    fiber.StatusInternalServerError,
			"error":   err.Error(),
		})
	}
}
