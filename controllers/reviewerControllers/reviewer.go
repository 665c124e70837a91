package reviewerControllers

import (
	"strconv"

	"reviews/middleware"
	"reviews/services"
	"reviews/validators/reviewerValidator"

	"github.com/gofiber/fiber/v2"
)

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

// ListReviewers returns all reviewers, optionally filtered by country
func ListReviewers(c *fiber.Ctx) error {
	country := c.Locals("listCountry").(string)

	reviewers, err := services.ListReviewers(country)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviewers fetched!", reviewers)
}

// CreateReviewer creates a new reviewer
func CreateReviewer(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReviewer").(*reviewerValidator.CreateReviewerRequest)

	reviewer, err := services.CreateReviewer(reqData.Email, reqData.Name, reqData.Country)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Reviewer created!", reviewer)
}

// GetReviewer returns a single reviewer by id
func GetReviewer(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return middleware.ValidationErrorResponse(c, map[string]string{"id": "Must be an integer greater than 0!"})
	}

	reviewer, err := services.GetReviewer(id)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviewer fetched!", reviewer)
}

// UpdateReviewer applies a partial update to a reviewer
func UpdateReviewer(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return middleware.ValidationErrorResponse(c, map[string]string{"id": "Must be an integer greater than 0!"})
	}
	patch := c.Locals("reviewerPatch").(*services.ReviewerPatch)

	reviewer, err := services.UpdateReviewer(id, *patch)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviewer updated!", reviewer)
}

// DeleteReviewer removes a reviewer without reviews
func DeleteReviewer(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return middleware.ValidationErrorResponse(c, map[string]string{"id": "Must be an integer greater than 0!"})
	}

	if err := services.DeleteReviewer(id); err != nil {
		return middleware.DomainErrorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
