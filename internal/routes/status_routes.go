package routes

import (
	"context"

	"hr-management-backend/internal/handler"

	"github.com/gofiber/fiber/v2"
)

func SetupStatusRoutes(app *fiber.App, deps Deps) {
	ping := func(ctx context.Context) error {
		sqlDB, err := deps.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
	hdl := handler.NewStatusHandler(ping, deps.Cache)

	app.Get("/api/status", hdl.GetStatus)
}
