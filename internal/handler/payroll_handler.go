package handler

import (
	"hr-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type PayrollHandler struct {
	usecase *usecase.PayrollUsecase
}

func NewPayrollHandler(u *usecase.PayrollUsecase) *PayrollHandler {
	return &PayrollHandler{usecase: u}
}

func (h *PayrollHandler) Generate(c *fiber.Ctx) error {
	var input usecase.GenerateInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	result, err := h.usecase.Generate(input)
	if err != nil {
		return respondError(c, err, "generate payroll")
	}
	return c.JSON(fiber.Map{"message": "payroll generated", "data": result})
}

func (h *PayrollHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.usecase.List(c.Query("month"), c.Query("year"), queryUint(c, "employee_id"))
	if err != nil {
		return respondError(c, err, "fetch payrolls")
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *PayrollHandler) GetDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	payroll, err := h.usecase.Get(id)
	if err != nil {
		return respondError(c, err, "fetch payroll")
	}
	return c.JSON(fiber.Map{"data": payroll})
}

func (h *PayrollHandler) MarkPaid(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	payroll, err := h.usecase.MarkPaid(id)
	if err != nil {
		return respondError(c, err, "mark payroll paid")
	}
	return c.JSON(fiber.Map{"message": "payroll marked as paid", "data": payroll})
}

func (h *PayrollHandler) Send(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.usecase.Send(id); err != nil {
		return respondError(c, err, "send payslip")
	}
	return c.JSON(fiber.Map{"message": "payslip sent"})
}

func (h *PayrollHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.usecase.Delete(id); err != nil {
		return respondError(c, err, "delete payroll")
	}
	return c.JSON(fiber.Map{"message": "payroll deleted"})
}
