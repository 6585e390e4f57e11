package routes

import (
	"hr-management-backend/internal/handler"
	"hr-management-backend/internal/middleware"
	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes wires departments, positions and salary grades.
// Reads are open to any signed-in user; writes need manage_catalog.
func SetupCatalogRoutes(app *fiber.App, deps Deps) {
	roleRepo := repository.NewRoleRepository(deps.DB)
	manage := middleware.Permission(roleRepo, model.PermManageCatalog)
	auth := middleware.Auth(deps.Config.App.JWTSecret)

	dept := handler.NewDepartmentHandler(repository.NewDepartmentRepository(deps.DB), deps.Cache)
	api := app.Group("/api/departments", auth)
	api.Get("/", dept.GetAll)
	api.Get("/:id", dept.GetDetail)
	api.Post("/", manage, dept.Create)
	api.Put("/:id", manage, dept.Update)
	api.Delete("/:id", manage, dept.Delete)

	pos := handler.NewPositionHandler(repository.NewPositionRepository(deps.DB), deps.Cache)
	api = app.Group("/api/positions", auth)
	api.Get("/", pos.GetAll)
	api.Get("/:id", pos.GetDetail)
	api.Post("/", manage, pos.Create)
	api.Put("/:id", manage, pos.Update)
	api.Delete("/:id", manage, pos.Delete)

	grade := handler.NewSalaryGradeHandler(repository.NewSalaryGradeRepository(deps.DB), deps.Cache)
	api = app.Group("/api/salary-grades", auth)
	api.Get("/", grade.GetAll)
	api.Get("/:id", grade.GetDetail)
	api.Post("/", manage, grade.Create)
	api.Put("/:id", manage, grade.Update)
	api.Delete("/:id", manage, grade.Delete)
}
