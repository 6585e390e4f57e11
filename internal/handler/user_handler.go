package handler

import (
	"hr-management-backend/internal/model"
	"hr-management-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	usecase *usecase.UserUsecase
}

func NewUserHandler(u *usecase.UserUsecase) *UserHandler {
	return &UserHandler{usecase: u}
}

// userView is the public shape of a user; the password hash never leaves
// the server.
type userView struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID *uint  `json:"employee_id"`
	IsActive   bool   `json:"is_active"`
}

func toUserView(u model.User) userView {
	return userView{
		ID:         u.ID,
		Username:   u.Username,
		FullName:   u.FullName,
		Email:      u.Email,
		Role:       u.Role.Name,
		EmployeeID: u.EmployeeID,
		IsActive:   u.IsActive,
	}
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.usecase.Login(input.Username, input.Password)
	if err != nil {
		return respondError(c, err, "log in")
	}

	return c.JSON(fiber.Map{
		"message":     "login successful",
		"token":       res.Token,
		"expires_at":  res.ExpiresAt,
		"user":        toUserView(res.User),
		"permissions": res.Permissions,
	})
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input usecase.UserInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	user, err := h.usecase.Register(input)
	if err != nil {
		return respondError(c, err, "register user")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "user registered", "data": toUserView(*user)})
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	users, err := h.usecase.List(c.Query("search"))
	if err != nil {
		return respondError(c, err, "fetch users")
	}
	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, toUserView(u))
	}
	return c.JSON(fiber.Map{"data": views})
}

func (h *UserHandler) GetDetail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	user, err := h.usecase.Get(id)
	if err != nil {
		return respondError(c, err, "fetch user")
	}
	return c.JSON(fiber.Map{"data": toUserView(*user)})
}

// Me returns the account behind the bearer token.
func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid session"})
	}
	user, err := h.usecase.Get(userID)
	if err != nil {
		return respondError(c, err, "fetch user")
	}
	return c.JSON(fiber.Map{"data": toUserView(*user)})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	var input usecase.UserInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid request body")
	}
	user, err := h.usecase.Update(id, input)
	if err != nil {
		return respondError(c, err, "update user")
	}
	return c.JSON(fiber.Map{"message": "user updated", "data": toUserView(*user)})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if userID, ok := c.Locals("user_id").(uint); ok && userID == id {
		return badRequest(c, "cannot delete the signed-in user")
	}
	if err := h.usecase.Delete(id); err != nil {
		return respondError(c, err, "delete user")
	}
	return c.JSON(fiber.Map{"message": "user deleted"})
}
