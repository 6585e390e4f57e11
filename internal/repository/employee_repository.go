package repository

import (
	"hr-management-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeFilter struct {
	Search       string
	DepartmentID uint
	Status       string
}

type EmployeeRepository interface {
	GetAll(filter EmployeeFilter) ([]model.Employee, error)
	GetByID(id uint) (*model.Employee, error)
	GetByIDs(ids []uint) ([]model.Employee, error)
	Create(emp *model.Employee) error
	Update(emp *model.Employee) error
	Delete(id uint) error
	CountByStatus(status string) (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) GetAll(filter EmployeeFilter) ([]model.Employee, error) {
	var list []model.Employee
	query := r.db.Preload("Department").Preload("Position").Preload("SalaryGrade")

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("full_name LIKE ? OR code LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}
	if filter.DepartmentID != 0 {
		query = query.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	err := query.Order("code asc").Find(&list).Error
	return list, err
}

func (r *employeeRepository) GetByID(id uint) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.Preload("Department").Preload("Position").Preload("SalaryGrade").First(&emp, id).Error
	return &emp, err
}

func (r *employeeRepository) GetByIDs(ids []uint) ([]model.Employee, error) {
	var list []model.Employee
	query := r.db.Preload("SalaryGrade")
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}
	err := query.Order("id asc").Find(&list).Error
	return list, err
}

func (r *employeeRepository) Create(emp *model.Employee) error {
	return r.db.Omit("Department", "Position", "SalaryGrade").Create(emp).Error
}

func (r *employeeRepository) Update(emp *model.Employee) error {
	return r.db.Omit("Department", "Position", "SalaryGrade").Save(emp).Error
}

func (r *employeeRepository) Delete(id uint) error {
	return deleteByID(r.db, &model.Employee{}, id)
}

func (r *employeeRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Employee{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
