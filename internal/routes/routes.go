package routes

import (
	"hr-management-backend/config"
	"hr-management-backend/internal/cache"
	"hr-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Deps carries the shared resources every route group is built from.
type Deps struct {
	DB     *gorm.DB
	Cache  cache.Cache
	Mailer usecase.PayslipSender
	Config *config.Config
}

// Setup registers every API route group on app.
func Setup(app *fiber.App, deps Deps) {
	SetupStatusRoutes(app, deps)
	SetupAuthRoutes(app, deps)
	SetupUserRoutes(app, deps)
	SetupRoleRoutes(app, deps)
	SetupEmployeeRoutes(app, deps)
	SetupCatalogRoutes(app, deps)
	SetupContractRoutes(app, deps)
	SetupTimesheetRoutes(app, deps)
	SetupPayrollRoutes(app, deps)
	SetupRewardRoutes(app, deps)
	SetupDashboardRoutes(app, deps)
	SetupReportRoutes(app, deps)
}
