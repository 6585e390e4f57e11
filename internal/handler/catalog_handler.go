package handler

import (
	"log"
	"strings"

	"hr-management-backend/internal/cache"
	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

const (
	cacheKeyDepartments  = "departments"
	cacheKeyPositions    = "positions"
	cacheKeySalaryGrades = "salary_grades"
)

// cachedList serves unfiltered lookup lists from the cache. A cache failure
// falls back to the database.
func cachedList[T any](c *fiber.Ctx, store cache.Cache, key, search string, load func(string) ([]T, error)) ([]T, error) {
	if search != "" {
		return load(search)
	}

	var list []T
	if hit, err := store.Get(c.UserContext(), key, &list); err != nil {
		log.Printf("cache get %s: %v", key, err)
	} else if hit {
		return list, nil
	}

	list, err := load("")
	if err != nil {
		return nil, err
	}
	if err := store.Set(c.UserContext(), key, list); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
	return list, nil
}

func invalidate(c *fiber.Ctx, store cache.Cache, key string) {
	if err := store.Delete(c.UserContext(), key); err != nil {
		log.Printf("cache delete %s: %v", key, err)
	}
}

type catalogInput struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (in *catalogInput) validate() string {
	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)
	if in.Code == "" || in.Name == "" {
		return "code and name are required"
	}
	return ""
}

type DepartmentHandler struct {
	repo  repository.DepartmentRepository
	cache cache.Cache
}

func NewDepartmentHandler(repo repository.DepartmentRepository, store cache.Cache) *DepartmentHandler {
	return &DepartmentHandler{repo: repo, cache: store}
}

func (h *DepartmentHandler) GetAll(c *fiber.Ctx) error {
	list, err := cachedList(c, h.cache, cacheKeyDepartments, c.Query("search"), h.repo.GetAll)
	if err != nil {
		return respondError(c, err, "fetch departments")
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *DepartmentHandler) GetDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	dept, err := h.repo.GetByID(id)
	if err != nil {
		return respondError(c, err, "fetch department")
	}
	return c.JSON(fiber.Map{"data": dept})
}

func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var input catalogInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := input.validate(); msg != "" {
		return badRequest(c, msg)
	}

	dept := model.Department{Code: input.Code, Name: input.Name, Description: input.Description}
	if err := h.repo.Create(&dept); err != nil {
		return respondError(c, err, "create department")
	}
	invalidate(c, h.cache, cacheKeyDepartments)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "department created", "data": dept})
}

func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var input catalogInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := input.validate(); msg != "" {
		return badRequest(c, msg)
	}

	dept, err := h.repo.GetByID(id)
	if err != nil {
		return respondError(c, err, "fetch department")
	}
	dept.Code = input.Code
	dept.Name = input.Name
	dept.Description = input.Description

	if err := h.repo.Update(dept); err != nil {
		return respondError(c, err, "update department")
	}
	invalidate(c, h.cache, cacheKeyDepartments)
	return c.JSON(fiber.Map{"message": "department updated", "data": dept})
}

func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.repo.Delete(id); err != nil {
		return respondError(c, err, "delete department")
	}
	invalidate(c, h.cache, cacheKeyDepartments)
	return c.JSON(fiber.Map{"message": "department deleted"})
}

type PositionHandler struct {
	repo  repository.PositionRepository
	cache cache.Cache
}

func NewPositionHandler(repo repository.PositionRepository, store cache.Cache) *PositionHandler {
	return &PositionHandler{repo: repo, cache: store}
}

func (h *PositionHandler) GetAll(c *fiber.Ctx) error {
	list, err := cachedList(c, h.cache, cacheKeyPositions, c.Query("search"), h.repo.GetAll)
	if err != nil {
		return respondError(c, err, "fetch positions")
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *PositionHandler) GetDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	pos, err := h.repo.GetByID(id)
	if err != nil {
		return respondError(c, err, "fetch position")
	}
	return c.JSON(fiber.Map{"data": pos})
}

func (h *PositionHandler) Create(c *fiber.Ctx) error {
	var input catalogInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := input.validate(); msg != "" {
		return badRequest(c, msg)
	}

	pos := model.Position{Code: input.Code, Name: input.Name, Description: input.Description}
	if err := h.repo.Create(&pos); err != nil {
		return respondError(c, err, "create position")
	}
	invalidate(c, h.cache, cacheKeyPositions)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "position created", "data": pos})
}

func (h *PositionHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var input catalogInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := input.validate(); msg != "" {
		return badRequest(c, msg)
	}

	pos, err := h.repo.GetByID(id)
	if err != nil {
		return respondError(c, err, "fetch position")
	}
	pos.Code = input.Code
	pos.Name = input.Name
	pos.Description = input.Description

	if err := h.repo.Update(pos); err != nil {
		return respondError(c, err, "update position")
	}
	invalidate(c, h.cache, cacheKeyPositions)
	return c.JSON(fiber.Map{"message": "position updated", "data": pos})
}

func (h *PositionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.repo.Delete(id); err != nil {
		return respondError(c, err, "delete position")
	}
	invalidate(c, h.cache, cacheKeyPositions)
	return c.JSON(fiber.Map{"message": "position deleted"})
}

type SalaryGradeHandler struct {
	repo  repository.SalaryGradeRepository
	cache cache.Cache
}

func NewSalaryGradeHandler(repo repository.SalaryGradeRepository, store cache.Cache) *SalaryGradeHandler {
	return &SalaryGradeHandler{repo: repo, cache: store}
}

type salaryGradeInput struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	BaseSalary  int64   `json:"base_salary"`
	Coefficient float64 `json:"coefficient"`
	Allowance   int64   `json:"allowance"`
}

func (in *salaryGradeInput) validate() string {
	in.Code = strings.TrimSpace(in.Code)
	if in.Code == "" {
		return "code is required"
	}
	if in.BaseSalary < 0 || in.Allowance < 0 || in.Coefficient < 0 {
		return "salary amounts must not be negative"
	}
	if in.Coefficient == 0 {
		in.Coefficient = 1
	}
	return ""
}

func (h *SalaryGradeHandler) GetAll(c *fiber.Ctx) error {
	list, err := cachedList(c, h.cache, cacheKeySalaryGrades, c.Query("search"), h.repo.GetAll)
	if err != nil {
		return respondError(c, err, "fetch salary grades")
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *SalaryGradeHandler) GetDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	grade, err := h.repo.GetByID(id)
	if err != nil {
		return respondError(c, err, "fetch salary grade")
	}
	return c.JSON(fiber.Map{"data": grade})
}

func (h *SalaryGradeHandler) Create(c *fiber.Ctx) error {
	var input salaryGradeInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := input.validate(); msg != "" {
		return badRequest(c, msg)
	}

	grade := model.SalaryGrade{
		Code:        input.Code,
		Name:        input.Name,
		BaseSalary:  input.BaseSalary,
		Coefficient: input.Coefficient,
		Allowance:   input.Allowance,
	}
	if err := h.repo.Create(&grade); err != nil {
		return respondError(c, err, "create salary grade")
	}
	invalidate(c, h.cache, cacheKeySalaryGrades)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "salary grade created", "data": grade})
}

func (h *SalaryGradeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var input salaryGradeInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := input.validate(); msg != "" {
		return badRequest(c, msg)
	}

	grade, err := h.repo.GetByID(id)
	if err != nil {
		return respondError(c, err, "fetch salary grade")
	}
	grade.Code = input.Code
	grade.Name = input.Name
	grade.BaseSalary = input.BaseSalary
	grade.Coefficient = input.Coefficient
	grade.Allowance = input.Allowance

	if err := h.repo.Update(grade); err != nil {
		return respondError(c, err, "update salary grade")
	}
	invalidate(c, h.cache, cacheKeySalaryGrades)
	return c.JSON(fiber.Map{"message": "salary grade updated", "data": grade})
}

func (h *SalaryGradeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.repo.Delete(id); err != nil {
		return respondError(c, err, "delete salary grade")
	}
	invalidate(c, h.cache, cacheKeySalaryGrades)
	return c.JSON(fiber.Map{"message": "salary grade deleted"})
}
