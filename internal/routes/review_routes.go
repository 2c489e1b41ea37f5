package routes

import (
	"github.com/gofiber/fiber/v2"

	"icebreaker_server/internal/controllers"
	"icebreaker_server/internal/middleware"
)

func SetupRoutesReview(app *fiber.App, ctl *controllers.ReviewController) {
	review := app.Group("/review")

	review.Get("/:eventId", ctl.GetMyReviewHandler())
	review.Get("/:eventId/user/:userId", middleware.RequireAdmin, ctl.GetUserReviewHandler())
	review.Post("/:eventId/user/:userId/refresh", middleware.RequireAdmin, ctl.RefreshReviewHandler())
}
