package routes

import (
	"happy-thoughts-api/internal/controllers"
	"happy-thoughts-api/internal/middleware"
	"happy-thoughts-api/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Deps struct {
	Thoughts    *services.ThoughtService
	Log         *zap.Logger
	CORSOrigins string
}

// NewApp builds the Fiber app with middleware and every route registered.
func NewApp(d Deps) *fiber.App {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	if d.CORSOrigins == "" {
		d.CORSOrigins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:      "happy-thoughts-api",
		ErrorHandler: controllers.ErrorHandler(d.Log),
	})

	app.Use(middleware.RequestLogger(d.Log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.CORSOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	Register(app, d)
	return app
}

func Register(app *fiber.App, d Deps) {
	app.Get("/", controllers.ListEndpointsHandler())

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// Swagger API document
	app.Get("/docs/*", swagger.HandlerDefault)

	SetupRoutesThought(app, d.Thoughts)
}
