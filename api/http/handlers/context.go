package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/experts/pkg/logger"
)

// RequestIDKey is the fiber.Ctx Locals key holding the request id.
const RequestIDKey = "requestId"

func requestLogger(c *fiber.Ctx, log *logger.Logger) *logger.Logger {
	if id, ok := c.Locals(RequestIDKey).(string); ok && id != "" {
		return log.With("request_id", id)
	}
	return log
}
