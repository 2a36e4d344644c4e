package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedApp() (*fiber.App, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	app := fiber.New()
	app.Use(RequestLogger(zap.New(core)))
	return app, logs
}

func Test_RequestLogger_Generates_Request_ID(t *testing.T) {
	req := require.New(t)
	app, logs := newObservedApp()
	var seen string
	app.Get("/ping", func(c *fiber.Ctx) error {
		seen = RequestID(c)
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	req.NoError(err)
	req.Equal(fiber.StatusOK, resp.StatusCode)
	req.NotEmpty(seen)
	req.Equal(seen, resp.Header.Get(HeaderRequestID))

	entries := logs.FilterMessage("request").All()
	req.Len(entries, 1)
	req.Equal(seen, entries[0].ContextMap()["request_id"])
	req.EqualValues(fiber.StatusOK, entries[0].ContextMap()["status"])
}

func Test_RequestLogger_Keeps_Incoming_Request_ID(t *testing.T) {
	req := require.New(t)
	app, _ := newObservedApp()
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	r := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	r.Header.Set(HeaderRequestID, "abc-123")
	resp, err := app.Test(r)
	req.NoError(err)
	req.Equal("abc-123", resp.Header.Get(HeaderRequestID))
}

func Test_RequestLogger_Logs_Handler_Error_Status(t *testing.T) {
	req := require.New(t)
	app, logs := newObservedApp()
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	req.NoError(err)
	req.Equal(fiber.StatusInternalServerError, resp.StatusCode)

	entries := logs.FilterMessage("request").All()
	req.Len(entries, 1)
	req.EqualValues(fiber.StatusInternalServerError, entries[0].ContextMap()["status"])
}
