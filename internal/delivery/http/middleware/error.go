package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"
)

const (
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized access"
	MessageForbidden           = "forbidden access"
	MessageNotFound            = "not found"
	MessageInternalServerError = "internal server error"
)

type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

// ErrorMiddleware turns returned errors into {"message": ...} JSON bodies.
// Store failures are never mapped to domain errors by the handlers; they reach
// this point and surface as an opaque 500.
type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logf("panic recovered: %v", r)
				err = respond(c, fiber.StatusInternalServerError, MessageInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := normalizeError(err)
		if status >= 500 {
			m.logf("request failed: %v", err)
		}
		return respond(c, status, msg)
	}
}

func (m *ErrorMiddleware) logf(format string, args ...any) {
	if m == nil || m.logger == nil {
		return
	}
	m.logger.Printf(format, args...)
}

func respond(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"message": msg})
}

func normalizeError(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, MessageInternalServerError
		}
		msg := appErr.Message
		if msg == "" {
			msg = defaultMessageForStatus(status)
		}
		return status, msg
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			return fiber.StatusInternalServerError, MessageInternalServerError
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = defaultMessageForStatus(status)
		}
		return status, msg
	}

	return fiber.StatusInternalServerError, MessageInternalServerError
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		return MessageInternalServerError
	}
}
