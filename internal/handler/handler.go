package handler

import (
	"errors"
	"log"
	"strconv"

	"hr-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var errInvalidID = errors.New("invalid id")

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

func queryUint(c *fiber.Ctx, key string) uint {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 0 {
		return 0
	}
	return uint(v)
}

// respondError writes the status matching err. what names the failed action
// in the generic 500 message.
func respondError(c *fiber.Ctx, err error, what string) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "record not found"})
	case errors.Is(err, usecase.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "record already exists"})
	case errors.Is(err, usecase.ErrPayrollLocked):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("%s: %v", what, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to " + what})
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
