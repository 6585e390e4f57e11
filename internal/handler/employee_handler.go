package handler

import (
	"strings"
	"time"

	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"
	"hr-management-backend/internal/workhours"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	repo repository.EmployeeRepository
}

func NewEmployeeHandler(repo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

type employeeInput struct {
	Code          string `json:"code"`
	FullName      string `json:"full_name"`
	Gender        string `json:"gender"`
	DateOfBirth   string `json:"date_of_birth"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	HireDate      string `json:"hire_date"`
	Status        string `json:"status"`
	DepartmentID  *uint  `json:"department_id"`
	PositionID    *uint  `json:"position_id"`
	SalaryGradeID *uint  `json:"salary_grade_id"`
}

func (in *employeeInput) validate() string {
	in.Code = strings.TrimSpace(in.Code)
	in.FullName = strings.TrimSpace(in.FullName)
	if in.Code == "" || in.FullName == "" {
		return "code and full_name are required"
	}
	if in.Status == "" {
		in.Status = model.EmployeeActive
	}
	if !model.ValidEmployeeStatus(in.Status) {
		return "status must be ACTIVE, INACTIVE or RESIGNED"
	}
	for _, d := range []string{in.DateOfBirth, in.HireDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(workhours.DateLayout, d); err != nil {
			return "dates must be YYYY-MM-DD"
		}
	}
	return ""
}

func (in employeeInput) applyTo(emp *model.Employee) {
	emp.Code = in.Code
	emp.FullName = in.FullName
	emp.Gender = in.Gender
	emp.DateOfBirth = in.DateOfBirth
	emp.Email = in.Email
	emp.Phone = in.Phone
	emp.Address = in.Address
	emp.HireDate = in.HireDate
	emp.Status = in.Status
	emp.DepartmentID = in.DepartmentID
	emp.PositionID = in.PositionID
	emp.SalaryGradeID = in.SalaryGradeID
	// Relations are reloaded on the next read.
	emp.Department, emp.Position, emp.SalaryGrade = nil, nil, nil
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll(repository.EmployeeFilter{
		Search:       c.Query("search"),
		DepartmentID: queryUint(c, "department_id"),
		Status:       c.Query("status"),
	})
	if err != nil {
		return respondError(c, err, "fetch employees")
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *EmployeeHandler) GetDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	emp, err := h.repo.GetByID(id)
	if err != nil {
		return respondError(c, err, "fetch employee")
	}
	return c.JSON(fiber.Map{"data": emp})
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var input employeeInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := input.validate(); msg != "" {
		return badRequest(c, msg)
	}

	var emp model.Employee
	input.applyTo(&emp)
	if err := h.repo.Create(&emp); err != nil {
		return respondError(c, err, "create employee")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "employee created", "data": emp})
}

func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var input employeeInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	if msg := input.validate(); msg != "" {
		return badRequest(c, msg)
	}

	emp, err := h.repo.GetByID(id)
	if err != nil {
		return respondError(c, err, "fetch employee")
	}
	input.applyTo(emp)
	if err := h.repo.Update(emp); err != nil {
		return respondError(c, err, "update employee")
	}
	return c.JSON(fiber.Map{"message": "employee updated", "data": emp})
}

func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.repo.Delete(id); err != nil {
		return respondError(c, err, "delete employee")
	}
	return c.JSON(fiber.Map{"message": "employee deleted"})
}
