package handler

import (
	"strings"

	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	repo repository.RoleRepository
}

func NewRoleHandler(repo repository.RoleRepository) *RoleHandler {
	return &RoleHandler{repo: repo}
}

type roleInput struct {
	Name          string `json:"name"`
	PermissionIDs []uint `json:"permission_ids"`
}

func (h *RoleHandler) GetAll(c *fiber.Ctx) error {
	roles, err := h.repo.GetAll()
	if err != nil {
		return respondError(c, err, "fetch roles")
	}
	return c.JSON(fiber.Map{"data": roles})
}

func (h *RoleHandler) GetAllPermissions(c *fiber.Ctx) error {
	perms, err := h.repo.GetAllPermissions()
	if err != nil {
		return respondError(c, err, "fetch permissions")
	}
	return c.JSON(fiber.Map{"data": perms})
}

func (h *RoleHandler) GetDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	role, err := h.repo.GetByID(id)
	if err != nil {
		return respondError(c, err, "fetch role")
	}
	return c.JSON(fiber.Map{"data": role})
}

func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var input roleInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return badRequest(c, "name is required")
	}

	role := model.Role{Name: input.Name}
	if err := h.repo.Create(&role, input.PermissionIDs); err != nil {
		return respondError(c, err, "create role")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "role created", "data": role})
}

func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var input roleInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	role, err := h.repo.GetByID(id)
	if err != nil {
		return respondError(c, err, "fetch role")
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		if role.Name == model.RoleAdmin && name != model.RoleAdmin {
			return badRequest(c, "the Admin role cannot be renamed")
		}
		role.Name = name
	}
	if err := h.repo.Update(role, input.PermissionIDs); err != nil {
		return respondError(c, err, "update role")
	}
	return c.JSON(fiber.Map{"message": "role updated", "data": role})
}
