package repository

import (
	"hr-management-backend/internal/model"

	"gorm.io/gorm"
)

type ContractRepository interface {
	GetAll(employeeID uint, search string) ([]model.Contract, error)
	GetByID(id uint) (*model.Contract, error)
	Create(contract *model.Contract) error
	Update(contract *model.Contract) error
	Delete(id uint) error
}

type contractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db}
}

func (r *contractRepository) GetAll(employeeID uint, search string) ([]model.Contract, error) {
	var list []model.Contract
	query := r.db.Preload("Employee").Preload("SalaryGrade")

	if employeeID != 0 {
		query = query.Where("contracts.employee_id = ?", employeeID)
	}
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Joins("JOIN employees ON employees.id = contracts.employee_id").
			Where("contracts.contract_number LIKE ? OR employees.full_name LIKE ?", pattern, pattern)
	}

	err := query.Order("contracts.start_date desc").Find(&list).Error
	return list, err
}

func (r *contractRepository) GetByID(id uint) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.Preload("Employee").Preload("SalaryGrade").First(&contract, id).Error
	return &contract, err
}

func (r *contractRepository) Create(contract *model.Contract) error {
	return r.db.Omit("Employee", "SalaryGrade").Create(contract).Error
}

func (r *contractRepository) Update(contract *model.Contract) error {
	return r.db.Omit("Employee", "SalaryGrade").Save(contract).Error
}

func (r *contractRepository) Delete(id uint) error {
	return deleteByID(r.db, &model.Contract{}, id)
}
