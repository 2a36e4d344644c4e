package controllers

import (
	"errors"
	"net/http/httptest"
	"testing"

	"happy-thoughts-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func Test_ErrorHandler_Logs_Request_ID(t *testing.T) {
	req := require.New(t)
	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(log)})
	app.Use(middleware.RequestLogger(log))
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("store down") })

	r := httptest.NewRequest(fiber.MethodGet, "/boom", nil)
	r.Header.Set(middleware.HeaderRequestID, "req-42")
	resp, err := app.Test(r)
	req.NoError(err)
	req.Equal(fiber.StatusInternalServerError, resp.StatusCode)

	entries := logs.FilterMessage("request failed").All()
	req.Len(entries, 1)
	req.Equal("req-42", entries[0].ContextMap()["request_id"])
	req.Equal("store down", entries[0].ContextMap()["error"])
}

func Test_ErrorHandler_Client_Errors_Not_Logged(t *testing.T) {
	req := require.New(t)
	core, logs := observer.New(zap.DebugLevel)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.New(core))})
	app.Get("/teapot", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusTeapot, "short and stout") })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/teapot", nil))
	req.NoError(err)
	req.Equal(fiber.StatusTeapot, resp.StatusCode)
	req.Zero(logs.FilterMessage("request failed").Len())
}
