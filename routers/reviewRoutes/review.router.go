package reviewRoutes

import (
	reviewController "reviews/controllers/reviewControllers"
	"reviews/middleware"
	"reviews/validators/reviewValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/api/v1/reviews", middleware.APIKeyAuth)

	reviewGroup.Get("/", reviewValidator.ListReviews(), reviewController.ListReviews)
	reviewGroup.Post("/", reviewValidator.CreateReview(), reviewController.CreateReview)
	reviewGroup.Get("/:id", reviewController.GetReview)
	reviewGroup.Patch("/:id", reviewValidator.UpdateReview(), reviewController.UpdateReview)
	reviewGroup.Delete("/:id", reviewController.DeleteReview)
}
