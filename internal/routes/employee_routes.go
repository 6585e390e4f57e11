package routes

import (
	"hr-management-backend/internal/handler"
	"hr-management-backend/internal/middleware"
	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"
	"hr-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupEmployeeRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewEmployeeRepository(deps.DB)
	roleRepo := repository.NewRoleRepository(deps.DB)
	hdl := handler.NewEmployeeHandler(repo)
	manage := middleware.Permission(roleRepo, model.PermManageEmployees)

	api := app.Group("/api/employees", middleware.Auth(deps.Config.App.JWTSecret))
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetDetail)
	api.Post("/", manage, hdl.Create)
	api.Put("/:id", manage, hdl.Update)
	api.Delete("/:id", manage, hdl.Delete)
}

func SetupContractRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewContractRepository(deps.DB)
	employeeRepo := repository.NewEmployeeRepository(deps.DB)
	roleRepo := repository.NewRoleRepository(deps.DB)
	hdl := handler.NewContractHandler(usecase.NewContractUsecase(repo, employeeRepo))

	api := app.Group("/api/contracts", middleware.Auth(deps.Config.App.JWTSecret), middleware.Permission(roleRepo, model.PermManageContracts))
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetDetail)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}

func SetupRewardRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewRewardRepository(deps.DB)
	employeeRepo := repository.NewEmployeeRepository(deps.DB)
	roleRepo := repository.NewRoleRepository(deps.DB)
	hdl := handler.NewRewardHandler(repo, employeeRepo)

	api := app.Group("/api/rewards", middleware.Auth(deps.Config.App.JWTSecret), middleware.Permission(roleRepo, model.PermManageRewards))
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetDetail)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
