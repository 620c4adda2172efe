package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-checker/internal/services"
)

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, services.ErrMissingResume),
		errors.Is(err, services.ErrUnsupportedFileType),
		errors.Is(err, services.ErrUnreadableDocument):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, services.ErrModelUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func respondError(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

// ErrorHandler renders errors that escape a handler as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return respondError(c, err)
}
