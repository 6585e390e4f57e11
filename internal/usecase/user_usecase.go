package usecase

import (
	"errors"
	"strings"
	"time"

	"hr-management-backend/internal/auth"
	"hr-management-backend/internal/model"
	"hr-management-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type UserInput struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID *uint  `json:"employee_id"`
	IsActive   *bool  `json:"is_active"`
}

type LoginResult struct {
	Token       string     `json:"token"`
	ExpiresAt   time.Time  `json:"expires_at"`
	User        model.User `json:"user"`
	Permissions []string   `json:"permissions"`
}

type UserUsecase struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
	secret   string
	tokenTTL time.Duration
	now      func() time.Time
}

func NewUserUsecase(repo repository.UserRepository, roleRepo repository.RoleRepository, secret string, tokenTTL time.Duration) *UserUsecase {
	return &UserUsecase{
		repo:     repo,
		roleRepo: roleRepo,
		secret:   secret,
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

func (u *UserUsecase) Register(input UserInput) (*model.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	if input.Username == "" {
		return nil, invalid("username is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, invalid("password must be at least %d characters", minPasswordLength)
	}

	roleName := input.Role
	if roleName == "" {
		roleName = model.RoleEmployee
	}
	role, err := u.roleRepo.GetByName(roleName)
	if err != nil {
		if errors.Is(translate(err), ErrNotFound) {
			return nil, invalid("unknown role %q", roleName)
		}
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Username:   input.Username,
		Password:   string(hashed),
		FullName:   input.FullName,
		Email:      input.Email,
		RoleID:     role.ID,
		EmployeeID: input.EmployeeID,
		IsActive:   true,
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if err := u.repo.Create(&user); err != nil {
		return nil, translate(err)
	}
	user.Role = *role
	return &user, nil
}

func (u *UserUsecase) Login(username, password string) (*LoginResult, error) {
	user, err := u.repo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(translate(err), ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := auth.Issue(user.ID, user.Username, user.Role.Name, u.secret, u.tokenTTL, u.now())
	if err != nil {
		return nil, err
	}

	perms := make([]string, 0, len(user.Role.Permissions))
	for _, p := range user.Role.Permissions {
		perms = append(perms, p.Name)
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: *user, Permissions: perms}, nil
}

func (u *UserUsecase) List(search string) ([]model.User, error) {
	return u.repo.GetAll(search)
}

func (u *UserUsecase) Get(id uint) (*model.User, error) {
	user, err := u.repo.GetByID(id)
	if err != nil {
		return nil, translate(err)
	}
	return user, nil
}

// Update changes profile fields; an empty password keeps the current one.
func (u *UserUsecase) Update(id uint, input UserInput) (*model.User, error) {
	user, err := u.repo.GetByID(id)
	if err != nil {
		return nil, translate(err)
	}

	if name := strings.TrimSpace(input.Username); name != "" {
		user.Username = name
	}
	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.EmployeeID != nil {
		user.EmployeeID = input.EmployeeID
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Role != "" {
		role, err := u.roleRepo.GetByName(input.Role)
		if err != nil {
			if errors.Is(translate(err), ErrNotFound) {
				return nil, invalid("unknown role %q", input.Role)
			}
			return nil, err
		}
		user.RoleID = role.ID
		user.Role = *role
	}
	if input.Password != "" {
		if len(input.Password) < minPasswordLength {
			return nil, invalid("password must be at least %d characters", minPasswordLength)
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := u.repo.Update(user); err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (u *UserUsecase) Delete(id uint) error {
	return translate(u.repo.Delete(id))
}
