package reviewerRoutes

import (
	reviewerController "reviews/controllers/reviewerControllers"
	"reviews/middleware"
	"reviews/validators/reviewerValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewerRoutes(app *fiber.App) {
	reviewerGroup := app.Group("/api/v1/reviewers", middleware.APIKeyAuth)

	reviewerGroup.Get("/", reviewerValidator.ListReviewers(), reviewerController.ListReviewers)
	reviewerGroup.Post("/", reviewerValidator.CreateReviewer(), reviewerController.CreateReviewer)
	reviewerGroup.Get("/:id", reviewerController.GetReviewer)
	reviewerGroup.Patch("/:id", reviewerValidator.UpdateReviewer(), reviewerController.UpdateReviewer)
	reviewerGroup.Delete("/:id", reviewerController.DeleteReviewer)
}
