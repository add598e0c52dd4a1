package routes

import (
	"time"

	"staffdesk/cache"
	"staffdesk/handlers"
	"staffdesk/middleware"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	// Health check
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "staffdesk up",
			"version": "1.0.0",
		})
	})

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", middleware.RateLimit(cache.GetClient(), 10, time.Minute, "login"), handlers.Login)
	auth.Post("/logout", middleware.AuthRequired, handlers.Logout)

	// Session navigation
	session := api.Group("/session", middleware.AuthRequired)
	session.Get("/state", handlers.SessionState)
	session.Post("/back", handlers.GoBack)
	session.Post("/review", handlers.OpenReview)
	session.Post("/decide", handlers.Decide)

	// Request routes
	requests := api.Group("/requests", middleware.AuthRequired)
	requests.Get("/", handlers.ListRequests)
	requests.Get("/summary", handlers.Summary)
	requests.Post("/", handlers.SubmitRequest)
	requests.Post("/:id/select", handlers.SelectRequest)
}
