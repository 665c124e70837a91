package middleware

import (
	"errors"

	"reviews/services"

	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// DomainErrorResponse translates service errors to HTTP status codes:
// ValidationFailed 422, NotFound 404, Conflict 409, anything else 500.
func DomainErrorResponse(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return ValidationErrorResponse(c, map[string]string{validationErr.Field: validationErr.Reason})
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		return JsonResponse(c, fiber.StatusNotFound, false, notFoundErr.Error(), nil)
	}

	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		return JsonResponse(c, fiber.StatusConflict, false, conflictErr.Error(), nil)
	}

	return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}
