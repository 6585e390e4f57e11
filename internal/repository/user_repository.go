package repository

import (
	"hr-management-backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetAll(search string) ([]model.User, error)
	GetByID(id uint) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) GetAll(search string) ([]model.User, error) {
	var users []model.User
	query := r.db.Preload("Role")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("username LIKE ? OR full_name LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}
	err := query.Order("username asc").Find(&users).Error
	return users, err
}

func (r *userRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Role").Preload("Employee").First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	// Permissions are loaded here so the login response can carry them.
	err := r.db.Preload("Role.Permissions").Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Omit("Role", "Employee").Create(user).Error
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Omit("Role", "Employee").Save(user).Error
}

func (r *userRepository) Delete(id uint) error {
	return deleteByID(r.db, &model.User{}, id)
}
