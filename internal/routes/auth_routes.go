package routes

import (
	"github.com/gofiber/fiber/v2"

	"icebreaker_server/internal/controllers"
)

func SetupAuth(app *fiber.App, ctl *controllers.AuthController) {
	auth := app.Group("/auth")
	auth.Post("/login", ctl.Login())
}
