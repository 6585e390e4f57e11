package repository

import (
	"hr-management-backend/internal/model"

	"gorm.io/gorm"
)

type RoleRepository interface {
	GetAll() ([]model.Role, error)
	GetByID(id uint) (*model.Role, error)
	GetByName(name string) (*model.Role, error)
	Create(role *model.Role, permissionIDs []uint) error
	Update(role *model.Role, permissionIDs []uint) error
	GetAllPermissions() ([]model.Permission, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db}
}

func (r *roleRepository) GetAll() ([]model.Role, error) {
	var roles []model.Role
	err := r.db.Preload("Permissions").Find(&roles).Error
	return roles, err
}

func (r *roleRepository) GetByID(id uint) (*model.Role, error) {
	var role model.Role
	err := r.db.Preload("Permissions").First(&role, id).Error
	return &role, err
}

func (r *roleRepository) GetByName(name string) (*model.Role, error) {
	var role model.Role
	err := r.db.Preload("Permissions").Where("name = ?", name).First(&role).Error
	return &role, err
}

func (r *roleRepository) Create(role *model.Role, permissionIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Permissions").Create(role).Error; err != nil {
			return err
		}
		return replacePermissions(tx, role, permissionIDs)
	})
}

func (r *roleRepository) Update(role *model.Role, permissionIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Permissions").Save(role).Error; err != nil {
			return err
		}
		return replacePermissions(tx, role, permissionIDs)
	})
}

func replacePermissions(tx *gorm.DB, role *model.Role, permissionIDs []uint) error {
	var perms []model.Permission
	if len(permissionIDs) > 0 {
		if err := tx.Where("id IN ?", permissionIDs).Find(&perms).Error; err != nil {
			return err
		}
	}
	return tx.Model(role).Association("Permissions").Replace(perms)
}

func (r *roleRepository) GetAllPermissions() ([]model.Permission, error) {
	var perms []model.Permission
	err := r.db.Order("name asc").Find(&perms).Error
	return perms, err
}
