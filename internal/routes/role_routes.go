package routes

import (
	"hr-management-backend/internal/handler"
	"hr-management-backend/internal/middleware"
	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupRoleRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewRoleRepository(deps.DB)
	hdl := handler.NewRoleHandler(repo)

	api := app.Group("/api/admin/roles", middleware.Auth(deps.Config.App.JWTSecret), middleware.Role(model.RoleAdmin))
	api.Get("/", hdl.GetAll)
	api.Get("/permissions", hdl.GetAllPermissions)
	api.Get("/:id", hdl.GetDetail)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
}
