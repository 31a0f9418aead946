package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes builds the echo server with all API routes, the request
// logging middleware and the envelope-shaped error handler.
func (h *NewsHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = h.errorHandler

	e.Use(h.loggingMiddleware)

	api := e.Group("/api")
	api.GET("/news", h.News)
	api.POST("/news", h.CreateNews, h.requireSession)
	api.GET("/news/slug/:slug", h.NewsBySlug)
	api.GET("/news/:idOrSlug", h.NewsByIDOrSlug)
	api.PUT("/news/:id", h.UpdateNews, h.requireSession)
	api.DELETE("/news/:id", h.DeleteNews, h.requireSession, h.requireAdmin)
	api.GET("/categories", h.Categories)

	e.GET("/health", h.Health)

	return e
}

func (h *NewsHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// errorHandler normalizes everything echo surfaces itself (routing 404,
// method not allowed, malformed bodies) into the envelope, keeping 405
// distinguishable from business errors.
func (h *NewsHandler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		switch status {
		case http.StatusMethodNotAllowed:
			message = "method not allowed"
		case http.StatusNotFound:
			message = "not found"
		default:
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		}
	} else if h.opts.Debug {
		message = err.Error()
	}

	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", "error", err, "path", c.Request().URL.Path)
	}

	if err := respondError(c, status, message); err != nil {
		h.log.Error("failed to write error response", "error", err)
	}
}

func (h *NewsHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.Request().RemoteAddr,
		)

		return err
	}
}
