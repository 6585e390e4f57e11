package routes

import (
	"hr-management-backend/internal/handler"
	"hr-management-backend/internal/middleware"
	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"
	"hr-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func newUserHandler(deps Deps) *handler.UserHandler {
	repo := repository.NewUserRepository(deps.DB)
	roleRepo := repository.NewRoleRepository(deps.DB)
	uc := usecase.NewUserUsecase(repo, roleRepo, deps.Config.App.JWTSecret, deps.Config.App.TokenTTL)
	return handler.NewUserHandler(uc)
}

func SetupAuthRoutes(app *fiber.App, deps Deps) {
	hdl := newUserHandler(deps)
	secret := deps.Config.App.JWTSecret

	api := app.Group("/api/auth")
	api.Post("/login", hdl.Login)
	api.Post("/register", middleware.Auth(secret), middleware.Role(model.RoleAdmin), hdl.Register)
	api.Get("/me", middleware.Auth(secret), hdl.Me)
}

func SetupUserRoutes(app *fiber.App, deps Deps) {
	hdl := newUserHandler(deps)
	roleRepo := repository.NewRoleRepository(deps.DB)

	api := app.Group("/api/users", middleware.Auth(deps.Config.App.JWTSecret), middleware.Permission(roleRepo, model.PermManageUsers))
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetDetail)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
