package routes

import (
	"hr-management-backend/internal/handler"
	"hr-management-backend/internal/middleware"
	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"
	"hr-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupTimesheetRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewTimesheetRepository(deps.DB)
	employeeRepo := repository.NewEmployeeRepository(deps.DB)
	roleRepo := repository.NewRoleRepository(deps.DB)
	hdl := handler.NewTimesheetHandler(usecase.NewTimesheetUsecase(repo, employeeRepo))
	manage := middleware.Permission(roleRepo, model.PermManageTimesheets)

	api := app.Group("/api/timesheets", middleware.Auth(deps.Config.App.JWTSecret))
	api.Post("/preview", hdl.Preview)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetDetail)
	api.Post("/", manage, hdl.Create)
	api.Put("/:id", manage, hdl.Update)
	api.Delete("/:id", manage, hdl.Delete)
}
