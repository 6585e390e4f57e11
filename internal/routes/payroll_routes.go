package routes

import (
	"hr-management-backend/internal/handler"
	"hr-management-backend/internal/middleware"
	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"
	"hr-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupPayrollRoutes(app *fiber.App, deps Deps) {
	uc := usecase.NewPayrollUsecase(
		repository.NewPayrollRepository(deps.DB),
		repository.NewEmployeeRepository(deps.DB),
		repository.NewTimesheetRepository(deps.DB),
		repository.NewRewardRepository(deps.DB),
		deps.Mailer,
		deps.Config.App.StandardMonthlyHours,
	)
	hdl := handler.NewPayrollHandler(uc)
	roleRepo := repository.NewRoleRepository(deps.DB)

	api := app.Group("/api/payrolls", middleware.Auth(deps.Config.App.JWTSecret), middleware.Permission(roleRepo, model.PermManagePayroll))
	api.Post("/generate", hdl.Generate)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetDetail)
	api.Put("/:id/pay", hdl.MarkPaid)
	api.Post("/:id/send", hdl.Send)
	api.Delete("/:id", hdl.Delete)
}
