package handler

import (
	"context"
	"errors"
	"time"

	"hr-management-backend/internal/cache"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type StatusHandler struct {
	database HealthCheck
	cache    cache.Cache
	now      func() time.Time
}

func NewStatusHandler(database HealthCheck, store cache.Cache) *StatusHandler {
	return &StatusHandler{database: database, cache: store, now: time.Now}
}

func (h *StatusHandler) GetStatus(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	body := fiber.Map{
		"status":   "ok",
		"database": "up",
		"cache":    "up",
		"time":     h.now().UTC().Format(time.RFC3339),
	}

	if err := h.cache.Ping(ctx); err != nil {
		if errors.Is(err, cache.ErrDisabled) {
			body["cache"] = "disabled"
		} else {
			body["cache"] = "down"
			body["status"] = "degraded"
		}
	}

	if err := h.database(ctx); err != nil {
		body["database"] = "down"
		body["status"] = "unavailable"
		return c.Status(fiber.StatusServiceUnavailable).JSON(body)
	}
	return c.JSON(body)
}
