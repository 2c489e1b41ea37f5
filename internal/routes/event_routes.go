package routes

import (
	"github.com/gofiber/fiber/v2"

	"icebreaker_server/internal/controllers"
	"icebreaker_server/internal/middleware"
)

func SetupRoutesEvent(app *fiber.App, ctl *controllers.EventController) {
	event := app.Group("/event")

	// Event CRUD
	event.Post("/", middleware.RequireAdmin, ctl.CreateEventHandler())
	event.Get("/", middleware.RequireAdmin, ctl.ListEventsHandler())

	// Static path before the dynamic one
	event.Get("/status/:eventId", ctl.GetEventStatusHandler())

	// Dynamic event routes
	event.Get("/:eventId", ctl.GetEventHandler())
	event.Patch("/:eventId", middleware.RequireAdmin, ctl.UpdateEventHandler())
	event.Delete("/:eventId", middleware.RequireAdmin, ctl.DeleteEventHandler())

	// Live-session controls
	event.Patch("/:eventId/current-activity", middleware.RequireAdmin, ctl.SetCurrentActivityHandler())
	event.Patch("/:eventId/review-visibility", middleware.RequireAdmin, ctl.SetReviewVisibilityHandler())

	// Activity roster
	event.Post("/:eventId/activity/:activityId", middleware.RequireAdmin, ctl.AttachActivityHandler())
	event.Delete("/:eventId/activity/:activityId", middleware.RequireAdmin, ctl.DetachActivityHandler())

	event.Get("/:eventId/participants", ctl.ListParticipantsHandler())
}
