package repository

import (
	"hr-management-backend/internal/model"

	"gorm.io/gorm"
)

type PayrollRepository interface {
	GetAll(month, year string, employeeID uint) ([]model.Payroll, error)
	GetByID(id uint) (*model.Payroll, error)
	GetByPeriod(employeeID uint, month, year string) (*model.Payroll, error)
	Save(payroll *model.Payroll) error
	Delete(id uint) error
}

type payrollRepository struct {
	db *gorm.DB
}

func NewPayrollRepository(db *gorm.DB) PayrollRepository {
	return &payrollRepository{db}
}

func (r *payrollRepository) GetAll(month, year string, employeeID uint) ([]model.Payroll, error) {
	var list []model.Payroll
	query := r.db.Preload("Employee")
	if month != "" {
		query = query.Where("month = ?", month)
	}
	if year != "" {
		query = query.Where("year = ?", year)
	}
	if employeeID != 0 {
		query = query.Where("employee_id = ?", employeeID)
	}
	err := query.Order("year desc").Order("month desc").Order("employee_id asc").Find(&list).Error
	return list, err
}

func (r *payrollRepository) GetByID(id uint) (*model.Payroll, error) {
	var payroll model.Payroll
	err := r.db.Preload("Employee").First(&payroll, id).Error
	return &payroll, err
}

func (r *payrollRepository) GetByPeriod(employeeID uint, month, year string) (*model.Payroll, error) {
	var payroll model.Payroll
	err := r.db.Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).Limit(1).Find(&payroll).Error
	if err != nil {
		return nil, err
	}
	if payroll.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &payroll, nil
}

// Save inserts a new payroll or updates an existing one.
func (r *payrollRepository) Save(payroll *model.Payroll) error {
	return r.db.Omit("Employee").Save(payroll).Error
}

func (r *payrollRepository) Delete(id uint) error {
	return purgeByID(r.db, &model.Payroll{}, id)
}
