package routes

import (
	"github.com/gofiber/fiber/v2"

	"icebreaker_server/internal/controllers"
	"icebreaker_server/internal/middleware"
)

func SetupRoutesUserActivity(app *fiber.App, ctl *controllers.UserActivityController) {
	ua := app.Group("/user-activity")

	// Create/update/delete enforce owner-or-admin inside the handler
	ua.Post("/", ctl.CreateUserActivityHandler())
	ua.Get("/", middleware.RequireAdmin, ctl.ListUserActivitiesHandler())
	ua.Get("/:userId/:activityId", ctl.GetUserActivityHandler())
	ua.Patch("/:userId/:activityId", ctl.UpdateUserActivityHandler())
	ua.Delete("/:userId/:activityId", ctl.DeleteUserActivityHandler())
}
