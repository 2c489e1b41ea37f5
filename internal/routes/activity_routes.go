package routes

import (
	"github.com/gofiber/fiber/v2"

	"icebreaker_server/internal/controllers"
	"icebreaker_server/internal/middleware"
)

func SetupRoutesActivity(app *fiber.App, ctl *controllers.ActivityController) {
	activity := app.Group("/activity")

	activity.Post("/", middleware.RequireAdmin, ctl.CreateActivityHandler())
	activity.Get("/", ctl.ListActivitiesHandler())
	activity.Get("/:activityId", ctl.GetActivityHandler())
	activity.Delete("/:activityId", middleware.RequireAdmin, ctl.DeleteActivityHandler())
}
