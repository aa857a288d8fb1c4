package http

import (
	nethttp "net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/google/uuid"

	"github.com/artem13815/experts/api/http/handlers"
	"github.com/artem13815/experts/api/http/views"
	"github.com/artem13815/experts/pkg/logger"
)

// NewApp creates the Fiber app with embedded views and common middleware.
func NewApp(log *logger.Logger) *fiber.App {
	engine := html.NewFileSystem(nethttp.FS(views.FS), ".html")
	app := fiber.New(fiber.Config{
		AppName: "experts",
		Views:   engine,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(log))
	return app
}

// RequestLogger tags each request with an id (reusing X-Request-ID when sent)
// and logs the outcome.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(handlers.RequestIDKey, id)
		c.Set(fiber.HeaderXRequestID, id)

		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		log.Info("http request",
			"request_id", id,
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		)
		return err
	}
}
