package reviewValidator

import (
	"encoding/json"
	"regexp"
	"strconv"

	"reviews/middleware"
	"reviews/services"

	"github.com/gofiber/fiber/v2"
)

var (
	ratingFilterPattern = regexp.MustCompile(`^((eq|gte?|lte?):)?[1-5]$`)
	dateFilterPattern   = regexp.MustCompile(`^((eq|gte?|lte?):)?(19|20)\d{2}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)
)

// CreateReviewRequest is the validated POST /reviews body.
type CreateReviewRequest struct {
	ReviewerID uint   `json:"reviewer_id"`
	Title      string `json:"title"`
	Rating     int    `json:"rating"`
	Content    string `json:"content"`
}

// ListReviewsQuery carries the shape-checked filter values of GET /reviews.
type ListReviewsQuery struct {
	Rating     string
	Date       string
	ReviewerID uint
}

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Field rules are enforced by the service before any store call
		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

// UpdateReview validates a PATCH body. Only fields present in the body are
// applied; a field explicitly set to null is a validation failure.
func UpdateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body map[string]json.RawMessage
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		patch := new(services.ReviewPatch)

		for key, raw := range body {
			if string(raw) == "null" {
				errors[key] = "Field can't be null!"
				continue
			}
			switch key {
			case "title":
				var value string
				if err := json.Unmarshal(raw, &value); err != nil {
					errors[key] = "Must be a string!"
					continue
				}
				patch.Title = &value
			case "rating":
				var value int
				if err := json.Unmarshal(raw, &value); err != nil {
					errors[key] = "Must be an integer!"
					continue
				}
				patch.Rating = &value
			case "content":
				var value string
				if err := json.Unmarshal(raw, &value); err != nil {
					errors[key] = "Must be a string!"
					continue
				}
				patch.Content = &value
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("reviewPatch", patch)
		return c.Next()
	}
}

// ListReviews validates the rating/date filter values against the advertised
// operator grammar and ReviewerId as a positive integer.
func ListReviews() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)
		query := new(ListReviewsQuery)

		if rating := c.Query("rating"); rating != "" {
			if !ratingFilterPattern.MatchString(rating) {
				errors["rating"] = "Must be a rating between 1 and 5, optionally prefixed with eq:, gt:, gte:, lt: or lte:!"
			} else {
				query.Rating = rating
			}
		}

		if date := c.Query("date"); date != "" {
			if !dateFilterPattern.MatchString(date) {
				errors["date"] = "Must be a YYYY-MM-DD date, optionally prefixed with eq:, gt:, gte:, lt: or lte:!"
			} else {
				query.Date = date
			}
		}

		if reviewerID := c.Query("ReviewerId"); reviewerID != "" {
			value, err := strconv.Atoi(reviewerID)
			if err != nil || value < 1 {
				errors["ReviewerId"] = "Must be an integer greater than 0!"
			} else {
				query.ReviewerID = uint(value)
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("reviewFilters", query)
		return c.Next()
	}
}
