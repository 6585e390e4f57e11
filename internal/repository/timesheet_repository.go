package repository

import (
	"hr-management-backend/internal/model"

	"gorm.io/gorm"
)

type TimesheetFilter struct {
	EmployeeID uint
	Month      string // "01".."12"
	Year       string
	Search     string
}

type TimesheetRepository interface {
	GetAll(filter TimesheetFilter) ([]model.Timesheet, error)
	GetByID(id uint) (*model.Timesheet, error)
	GetByEmployeeAndDate(employeeID uint, date string) (*model.Timesheet, error)
	GetByMonth(month, year string) ([]model.Timesheet, error)
	Create(ts *model.Timesheet) error
	Update(ts *model.Timesheet) error
	Delete(id uint) error
	CountByDate(date string) (int64, error)
}

type timesheetRepository struct {
	db *gorm.DB
}

func NewTimesheetRepository(db *gorm.DB) TimesheetRepository {
	return &timesheetRepository{db}
}

func (r *timesheetRepository) GetAll(filter TimesheetFilter) ([]model.Timesheet, error) {
	var list []model.Timesheet
	query := r.db.Preload("Employee")

	if filter.EmployeeID != 0 {
		query = query.Where("timesheets.employee_id = ?", filter.EmployeeID)
	}
	if filter.Month != "" && filter.Year != "" {
		query = query.Where("timesheets.work_date LIKE ?", monthPattern(filter.Month, filter.Year))
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Joins("JOIN employees ON employees.id = timesheets.employee_id").
			Where("employees.full_name LIKE ? OR employees.code LIKE ?", pattern, pattern)
	}

	err := query.Order("timesheets.work_date desc").Find(&list).Error
	return list, err
}

func (r *timesheetRepository) GetByID(id uint) (*model.Timesheet, error) {
	var ts model.Timesheet
	err := r.db.Preload("Employee").First(&ts, id).Error
	return &ts, err
}

func (r *timesheetRepository) GetByEmployeeAndDate(employeeID uint, date string) (*model.Timesheet, error) {
	var ts model.Timesheet
	// Find + Limit keeps gorm from logging "record not found" for a routine lookup.
	err := r.db.Where("employee_id = ? AND work_date = ?", employeeID, date).Limit(1).Find(&ts).Error
	if err != nil {
		return nil, err
	}
	if ts.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &ts, nil
}

func (r *timesheetRepository) GetByMonth(month, year string) ([]model.Timesheet, error) {
	var list []model.Timesheet
	err := r.db.Where("work_date LIKE ?", monthPattern(month, year)).Order("work_date asc").Find(&list).Error
	return list, err
}

func (r *timesheetRepository) Create(ts *model.Timesheet) error {
	return r.db.Omit("Employee").Create(ts).Error
}

func (r *timesheetRepository) Update(ts *model.Timesheet) error {
	return r.db.Omit("Employee").Save(ts).Error
}

func (r *timesheetRepository) Delete(id uint) error {
	return purgeByID(r.db, &model.Timesheet{}, id)
}

func (r *timesheetRepository) CountByDate(date string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Timesheet{}).Where("work_date = ?", date).Count(&count).Error
	return count, err
}
