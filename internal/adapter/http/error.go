package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/paramveer-prakash/career-sub001/internal/adapter/http/middleware"
	"github.com/paramveer-prakash/career-sub001/internal/domain"
)

type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes the standard JSON error body. message must be safe to
// show to clients.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.RequestIDFromCtx(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// writeDomainError maps pipeline errors onto HTTP responses.
func writeDomainError(c *fiber.Ctx, err error) error {
	var (
		renderErr *domain.RenderError
		exportErr *domain.ExportError
	)
	switch {
	case errors.Is(err, domain.ErrTemplateNotFound):
		return writeError(c, fiber.StatusNotFound, "TEMPLATE_NOT_FOUND", "template not found")
	case errors.Is(err, domain.ErrResumeNotFound):
		return writeError(c, fiber.StatusNotFound, "RESUME_NOT_FOUND", "resume not found")
	case errors.As(err, &renderErr):
		return writeError(c, fiber.StatusInternalServerError, "RENDER_ERROR", "failed to render resume")
	case errors.As(err, &exportErr):
		return writeError(c, fiber.StatusInternalServerError, "EXPORT_ERROR", "failed to export pdf")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler is the Fiber global error handler. Domain errors that reach
// it are mapped like handler errors; anything else becomes a generic
// envelope for its status.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			return writeDomainError(c, err)
		}

		switch fe.Code {
		case fiber.StatusBadRequest:
			return writeError(c, fe.Code, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, fe.Code, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, fe.Code, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, fe.Code, "INTERNAL_ERROR", "internal server error")
		}
	}
}
