package reviewControllers

import (
	"strconv"

	"reviews/middleware"
	"reviews/services"
	"reviews/validators/reviewValidator"

	"github.com/gofiber/fiber/v2"
)

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

// ListReviews returns all reviews matching the supplied filters
func ListReviews(c *fiber.Ctx) error {
	filters := c.Locals("reviewFilters").(*reviewValidator.ListReviewsQuery)

	reviewsList, err := services.ListReviews(filters.Rating, filters.Date, filters.ReviewerID)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", reviewsList)
}

// CreateReview creates a new review for an existing reviewer
func CreateReview(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReview").(*reviewValidator.CreateReviewRequest)

	review, err := services.CreateReview(reqData.ReviewerID, reqData.Title, reqData.Rating, reqData.Content, nil)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review created!", review)
}

// GetReview returns a single review by id
func GetReview(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return middleware.ValidationErrorResponse(c, map[string]string{"id": "Must be an integer greater than 0!"})
	}

	review, err := services.GetReview(id)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review fetched!", review)
}

// UpdateReview applies a partial update to a review
func UpdateReview(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return middleware.ValidationErrorResponse(c, map[string]string{"id": "Must be an integer greater than 0!"})
	}
	patch := c.Locals("reviewPatch").(*services.ReviewPatch)

	review, err := services.UpdateReview(id, *patch)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated!", review)
}

// DeleteReview removes a review
func DeleteReview(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return middleware.ValidationErrorResponse(c, map[string]string{"id": "Must be an integer greater than 0!"})
	}

	if err := services.DeleteReview(id); err != nil {
		return middleware.DomainErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
