package handler

import (
	"time"

	"hr-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo, now: time.Now}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	now := h.now()
	date := now.Format("2006-01-02")
	month := now.Format("01")
	year := now.Format("2006")

	stats, err := h.repo.GetDashboardStats(date, month, year)
	if err != nil {
		return respondError(c, err, "fetch dashboard statistics")
	}

	return c.JSON(fiber.Map{
		"message": "dashboard statistics",
		"data":    stats,
	})
}
