// @title Icebreaker Event API
// @version 1.0
// @description Backend for live icebreaker events: activities, pair grouping and end-of-event reviews.
// @host localhost:8080
// @BasePath /

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "icebreaker_server/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"icebreaker_server/bootstrap"
	"icebreaker_server/config"
	"icebreaker_server/database"
	"icebreaker_server/internal/controllers"
	"icebreaker_server/internal/middleware"
	"icebreaker_server/internal/repository"
	"icebreaker_server/internal/routes"
	"icebreaker_server/internal/services"
	"icebreaker_server/internal/socket"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		panic("JWT_SECRET is required")
	}

	// Connect to the database
	client := database.ConnectMongo(cfg.MongoURI, cfg.MongoDB)
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)

	// One review per (user, event), one answer per (user, activity)
	if err := bootstrap.EnsureReviewIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}
	if err := bootstrap.EnsureUserActivityIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	// Socket.io server for live broadcasts
	sock := socket.NewSocketServer()
	go func() {
		if err := sock.Serve(); err != nil {
			log.Fatalf("socket server failed: %v", err)
		}
	}()
	defer sock.Close()

	// Repositories
	events := &repository.EventRepo{DB: db}
	users := &repository.UserRepo{DB: db}
	activities := &repository.ActivityRepo{DB: db}
	answers := &repository.UserActivityRepo{DB: db}
	groups := &repository.GroupActivityRepo{DB: db}
	reviews := &repository.ReviewRepo{DB: db}

	// Services
	tasks := services.NewTaskRunner(30 * time.Second)
	notifier := &services.Notifier{Server: sock}
	reviewSvc := &services.ReviewService{
		Users:      users,
		Events:     events,
		Activities: activities,
		Answers:    answers,
		Groups:     groups,
		Reviews:    reviews,
		Tasks:      tasks,
	}
	grouping := &services.GroupingService{
		Users:    users,
		Events:   events,
		Groups:   groups,
		Reviews:  reviewSvc,
		Notifier: notifier,
	}

	// Fiber app
	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/api/socket-status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"connections": sock.Count()})
	})

	// socket.io handshake and upgrade go through fiber too
	app.All("/socket.io/*", adaptor.HTTPHandler(sock))

	// Get JWT with login
	routes.SetupAuth(app, &controllers.AuthController{Users: users, JWTSecret: cfg.JWTSecret})

	app.Use(middleware.JWTUidOnly(cfg.JWTSecret))

	// Routes
	routes.SetupRoutesEvent(app, &controllers.EventController{
		Events:     events,
		Users:      users,
		Activities: activities,
		Reviews:    reviewSvc,
		Notifier:   notifier,
	})
	routes.SetupRoutesActivity(app, &controllers.ActivityController{
		Activities: activities,
		Events:     events,
		Answers:    answers,
		Groups:     groups,
		Reviews:    reviewSvc,
	})
	routes.SetupRoutesUser(app, &controllers.UserController{
		Users:   users,
		Events:  events,
		Reviews: reviews,
	})
	routes.SetupRoutesUserActivity(app, &controllers.UserActivityController{
		Answers:    answers,
		Activities: activities,
		Reviews:    reviewSvc,
		Notifier:   notifier,
	})
	routes.SetupRoutesGroupActivity(app, &controllers.GroupActivityController{
		Groups:   groups,
		Grouping: grouping,
	})
	routes.SetupRoutesReview(app, &controllers.ReviewController{
		Events:  events,
		Reviews: reviewSvc,
	})

	// RUN SERVER
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting, then let queued review refreshes
	// finish before the process exits.
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	_ = app.Shutdown()
	tasks.Drain()
}
