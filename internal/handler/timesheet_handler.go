package handler

import (
	"hr-management-backend/internal/repository"
	"hr-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type TimesheetHandler struct {
	usecase *usecase.TimesheetUsecase
}

func NewTimesheetHandler(u *usecase.TimesheetUsecase) *TimesheetHandler {
	return &TimesheetHandler{usecase: u}
}

// Preview returns the derived hours for an unsaved form. It always answers
// 200; an unusable triple reports valid=false with zero hours.
func (h *TimesheetHandler) Preview(c *fiber.Ctx) error {
	var input usecase.TimesheetInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	return c.JSON(h.usecase.Preview(input.WorkDate, input.CheckIn, input.CheckOut))
}

func (h *TimesheetHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.usecase.List(repository.TimesheetFilter{
		EmployeeID: queryUint(c, "employee_id"),
		Month:      c.Query("month"),
		Year:       c.Query("year"),
		Search:     c.Query("search"),
	})
	if err != nil {
		return respondError(c, err, "fetch timesheets")
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *TimesheetHandler) GetDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	ts, err := h.usecase.Get(id)
	if err != nil {
		return respondError(c, err, "fetch timesheet")
	}
	return c.JSON(fiber.Map{"data": ts})
}

func (h *TimesheetHandler) Create(c *fiber.Ctx) error {
	var input usecase.TimesheetInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	ts, err := h.usecase.Create(input)
	if err != nil {
		return respondError(c, err, "create timesheet")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "timesheet created", "data": ts})
}

func (h *TimesheetHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var input usecase.TimesheetInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	ts, err := h.usecase.Update(id, input)
	if err != nil {
		return respondError(c, err, "update timesheet")
	}
	return c.JSON(fiber.Map{"message": "timesheet updated", "data": ts})
}

func (h *TimesheetHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.usecase.Delete(id); err != nil {
		return respondError(c, err, "delete timesheet")
	}
	return c.JSON(fiber.Map{"message": "timesheet deleted"})
}
