package handler

import (
	"time"

	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"
	"hr-management-backend/internal/workhours"

	"github.com/gofiber/fiber/v2"
)

type RewardHandler struct {
	repo         repository.RewardRepository
	employeeRepo repository.EmployeeRepository
}

func NewRewardHandler(repo repository.RewardRepository, employeeRepo repository.EmployeeRepository) *RewardHandler {
	return &RewardHandler{repo: repo, employeeRepo: employeeRepo}
}

type rewardInput struct {
	EmployeeID     uint   `json:"employee_id"`
	Kind           string `json:"kind"`
	DecisionNumber string `json:"decision_number"`
	Date           string `json:"date"`
	Amount         int64  `json:"amount"`
	Reason         string `json:"reason"`
}

func (in rewardInput) validate() string {
	if in.EmployeeID == 0 {
		return "employee_id is required"
	}
	if in.Kind != model.KindReward && in.Kind != model.KindDiscipline {
		return "kind must be REWARD or DISCIPLINE"
	}
	if _, err := time.Parse(workhours.DateLayout, in.Date); err != nil {
		return "date must be YYYY-MM-DD"
	}
	if in.Amount < 0 {
		return "amount must not be negative"
	}
	return ""
}

func (h *RewardHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(repository.RewardFilter{
		EmployeeID: queryUint(c, "employee_id"),
		Kind:       c.Query("kind"),
		Search:     c.Query("search"),
	})
	if err != nil {
		return respondError(c, err, "fetch rewards and disciplines")
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *RewardHandler) GetDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	record, err := h.repo.GetByID(id)
	if err != nil {
		return respondError(c, err, "fetch record")
	}
	return c.JSON(fiber.Map{"data": record})
}

func (h *RewardHandler) Create(c *fiber.Ctx) error {
	var input rewardInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := input.validate(); msg != "" {
		return badRequest(c, msg)
	}
	if _, err := h.employeeRepo.GetByID(input.EmployeeID); err != nil {
		return respondError(c, err, "fetch employee")
	}

	record := model.RewardDiscipline{
		EmployeeID:     input.EmployeeID,
		Kind:           input.Kind,
		DecisionNumber: input.DecisionNumber,
		Date:           input.Date,
		Amount:         input.Amount,
		Reason:         input.Reason,
	}
	if err := h.repo.Create(&record); err != nil {
		return respondError(c, err, "create record")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "record created", "data": record})
}

func (h *RewardHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var input rewardInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := input.validate(); msg != "" {
		return badRequest(c, msg)
	}

	record, err := h.repo.GetByID(id)
	if err != nil {
		return respondError(c, err, "fetch record")
	}
	record.EmployeeID = input.EmployeeID
	record.Kind = input.Kind
	record.DecisionNumber = input.DecisionNumber
	record.Date = input.Date
	record.Amount = input.Amount
	record.Reason = input.Reason

	if err := h.repo.Update(record); err != nil {
		return respondError(c, err, "update record")
	}
	return c.JSON(fiber.Map{"message": "record updated", "data": record})
}

func (h *RewardHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.repo.Delete(id); err != nil {
		return respondError(c, err, "delete record")
	}
	return c.JSON(fiber.Map{"message": "record deleted"})
}
