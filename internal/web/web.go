// internal/web/web.go
package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tamzrod/printer-keepalive/internal/status"
)

// StatusSource is anything that can produce a loop snapshot.
type StatusSource interface {
	Status() status.Snapshot
}

// New builds the HTTP status surface.
//
// GET /status  - full JSON snapshot
// GET /healthz - 200 while the loop is holding the line, 503 otherwise
func New(src StatusSource) http.Handler {
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true

	server.Use(middleware.Recover())

	server.GET("/status", func(c echo.Context) error {
		return c.JSON(http.StatusOK, src.Status())
	})

	server.GET("/healthz", func(c echo.Context) error {
		h := src.Status().Health()
		if h == status.HealthOK || h == status.HealthDegraded {
			return c.String(http.StatusOK, string(h))
		}
		return c.String(http.StatusServiceUnavailable, string(h))
	})

	return server
}
