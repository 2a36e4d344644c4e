package controllers

import (
	"happy-thoughts-api/dto"

	"github.com/gofiber/fiber/v2"
)

// ListEndpointsHandler godoc
// @Summary      List endpoints
// @Description  Every registered path with its HTTP methods
// @Tags         meta
// @Produce      json
// @Success      200  {array}  dto.RouteDTO
// @Router       / [get]
func ListEndpointsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(Endpoints(c.App()))
	}
}

// Endpoints groups the app's routes by path, in registration order.
// HEAD routes are left out since Fiber adds one for every GET.
func Endpoints(app *fiber.App) []dto.RouteDTO {
	out := make([]dto.RouteDTO, 0)
	index := make(map[string]int)
	for _, r := range app.GetRoutes(true) {
		if r.Method == fiber.MethodHead {
			continue
		}
		i, ok := index[r.Path]
		if !ok {
			i = len(out)
			index[r.Path] = i
			out = append(out, dto.RouteDTO{Path: r.Path})
		}
		out[i].Methods = append(out[i].Methods, r.Method)
	}
	return out
}
