package controllers

import (
	"errors"

	"happy-thoughts-api/dto"
	"happy-thoughts-api/internal/services"
	"happy-thoughts-api/internal/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	msgInvalidLength   = "The thought should have a length between 5 and 140 characters"
	msgSomethingWrong  = "Something went wrong"
	msgNotFound        = "Not found"
	msgThoughtNotFound = "Thought not found"
)

// ListThoughtsHandler godoc
// @Summary      List thoughts
// @Description  Five thoughts per page, newest first, plus the total number of thoughts
// @Tags         thoughts
// @Produce      json
// @Param        page  query  int  false  "Page index, starting at 0" minimum(0) default(0)
// @Success      200  {object}  dto.ThoughtPageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /thoughts [get]
func ListThoughtsHandler(svc *services.ThoughtService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := utils.ParsePage(c.Query("page"))

		resp, err := svc.List(c.UserContext(), page)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}
}

// CreateThoughtHandler godoc
// @Summary      Create a thought
// @Description  message must be 5 to 140 characters; userName defaults to "Anonymous"
// @Tags         thoughts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateThoughtDTO  true  "New thought"
// @Success      200  {object}  models.Thought
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /thoughts [post]
func CreateThoughtHandler(svc *services.ThoughtService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.CreateThoughtDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgSomethingWrong})
		}

		thought, err := svc.Create(c.UserContext(), body)
		if err != nil {
			// every create failure is a 400 for existing clients; only the text differs
			if errors.Is(err, services.ErrValidation) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgInvalidLength})
			}
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgSomethingWrong})
		}
		return c.JSON(thought)
	}
}

// LikeThoughtHandler godoc
// @Summary      Like a thought
// @Description  Adds one heart and returns the updated thought
// @Tags         thoughts
// @Produce      json
// @Param        id  path  string  true  "Thought ID (hex)"
// @Success      200  {object}  models.Thought
// @Failure      404  {object}  dto.MessageResponse
// @Router       /thoughts/{id}/like [post]
func LikeThoughtHandler(svc *services.ThoughtService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		thought, err := svc.Like(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrThoughtNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: msgNotFound})
			}
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msgThoughtNotFound})
		}
		return c.JSON(thought)
	}
}
