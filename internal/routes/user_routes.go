package routes

import (
	"github.com/gofiber/fiber/v2"

	"icebreaker_server/internal/controllers"
	"icebreaker_server/internal/middleware"
)

func SetupRoutesUser(app *fiber.App, ctl *controllers.UserController) {
	user := app.Group("/user")

	// Joining an event stays open so participants can self-register
	user.Post("/", ctl.CreateUserHandler())
	user.Get("/:userId", ctl.GetUserHandler())
	user.Patch("/:userId", ctl.UpdateUserHandler())
	user.Delete("/:userId", middleware.RequireAdmin, ctl.DeleteUserHandler())
}
