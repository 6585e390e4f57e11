package routes

import (
	"hr-management-backend/internal/handler"
	"hr-management-backend/internal/middleware"
	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, deps Deps) {
	repo := repository.NewDashboardRepository(deps.DB)
	roleRepo := repository.NewRoleRepository(deps.DB)
	hdl := handler.NewDashboardHandler(repo)

	app.Get("/api/dashboard", middleware.Auth(deps.Config.App.JWTSecret), middleware.Permission(roleRepo, model.PermViewReports), hdl.GetStats)
}

func SetupReportRoutes(app *fiber.App, deps Deps) {
	employeeRepo := repository.NewEmployeeRepository(deps.DB)
	timesheetRepo := repository.NewTimesheetRepository(deps.DB)
	roleRepo := repository.NewRoleRepository(deps.DB)
	hdl := handler.NewReportHandler(employeeRepo, timesheetRepo)

	api := app.Group("/api/reports", middleware.Auth(deps.Config.App.JWTSecret), middleware.Permission(roleRepo, model.PermViewReports))
	api.Get("/monthly", hdl.GetMonthlyRecap)
}
