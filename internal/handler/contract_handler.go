package handler

import (
	"hr-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ContractHandler struct {
	usecase *usecase.ContractUsecase
}

func NewContractHandler(u *usecase.ContractUsecase) *ContractHandler {
	return &ContractHandler{usecase: u}
}

func (h *ContractHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.usecase.List(queryUint(c, "employee_id"), c.Query("search"))
	if err != nil {
		return respondError(c, err, "fetch contracts")
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *ContractHandler) GetDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	contract, err := h.usecase.Get(id)
	if err != nil {
		return respondError(c, err, "fetch contract")
	}
	return c.JSON(fiber.Map{"data": contract})
}

func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var input usecase.ContractInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	contract, err := h.usecase.Create(input)
	if err != nil {
		return respondError(c, err, "create contract")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "contract created", "data": contract})
}

func (h *ContractHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var input usecase.ContractInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	contract, err := h.usecase.Update(id, input)
	if err != nil {
		return respondError(c, err, "update contract")
	}
	return c.JSON(fiber.Map{"message": "contract updated", "data": contract})
}

func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.usecase.Delete(id); err != nil {
		return respondError(c, err, "delete contract")
	}
	return c.JSON(fiber.Map{"message": "contract deleted"})
}
