package reviewerValidator

import (
	"encoding/json"

	"reviews/middleware"
	"reviews/services"
	"reviews/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateReviewerRequest is the validated POST /reviewers body.
type CreateReviewerRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

func CreateReviewer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewerRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Field rules are enforced by the service before any store call
		c.Locals("validatedReviewer", reqData)
		return c.Next()
	}
}

// UpdateReviewer validates a PATCH body. Only fields present in the body are
// applied; a field explicitly set to null is a validation failure rather than
// an erasure.
func UpdateReviewer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body map[string]json.RawMessage
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		patch := new(services.ReviewerPatch)

		for key, raw := range body {
			if string(raw) == "null" {
				errors[key] = "Field can't be null!"
				continue
			}
			var value string
			switch key {
			case "email":
				if err := json.Unmarshal(raw, &value); err != nil {
					errors[key] = "Must be a string!"
					continue
				}
				patch.Email = &value
			case "name":
				if err := json.Unmarshal(raw, &value); err != nil {
					errors[key] = "Must be a string!"
					continue
				}
				patch.Name = &value
			case "country":
				if err := json.Unmarshal(raw, &value); err != nil {
					errors[key] = "Must be a string!"
					continue
				}
				patch.Country = &value
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("reviewerPatch", patch)
		return c.Next()
	}
}

// ListReviewers validates the optional country query parameter against the
// strict alpha-3 rule and stores the normalized code.
func ListReviewers() fiber.Handler {
	return func(c *fiber.Ctx) error {
		country := c.Query("country")
		if country != "" {
			code, err := utils.ValidateAlpha3(country)
			if err != nil {
				return middleware.ValidationErrorResponse(c, map[string]string{
					"country": "Must be a valid ISO-3166-1 alpha-3 country code!",
				})
			}
			country = code
		}

		c.Locals("listCountry", country)
		return c.Next()
	}
}
