package routes

import (
	"github.com/gofiber/fiber/v2"

	"icebreaker_server/internal/controllers"
	"icebreaker_server/internal/middleware"
)

func SetupRoutesGroupActivity(app *fiber.App, ctl *controllers.GroupActivityController) {
	group := app.Group("/group-activity")

	group.Get("/activity/:activityId", ctl.GetByActivityHandler())
	group.Get("/:groupActivityId", ctl.GetGroupActivityHandler())
	group.Post("/:eventId/activity/:activityId", middleware.RequireAdmin, ctl.CreateGroupActivityHandler())
}
