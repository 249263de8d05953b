package services

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ValidationError indicates a payload the caller must correct before retrying.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UpstreamError indicates the external model call failed or returned no
// usable content.
type UpstreamError struct {
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	return e.Message
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps a service error to the response status code.
func HTTPStatus(err error) int {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
