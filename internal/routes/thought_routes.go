package routes

import (
	"happy-thoughts-api/internal/controllers"
	"happy-thoughts-api/internal/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesThought(app *fiber.App, svc *services.ThoughtService) {
	thoughts := app.Group("/thoughts")

	thoughts.Get("", controllers.ListThoughtsHandler(svc))
	thoughts.Post("", controllers.CreateThoughtHandler(svc))
	thoughts.Post("/:id/like", controllers.LikeThoughtHandler(svc))
}
