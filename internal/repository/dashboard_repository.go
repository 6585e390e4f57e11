package repository

import (
	"hr-management-backend/internal/model"

	"gorm.io/gorm"
)

type DepartmentHeadcount struct {
	DepartmentID   *uint  `json:"department_id"`
	DepartmentName string `json:"department_name"`
	Count          int64  `json:"count"`
}

type DashboardStats struct {
	TotalEmployees  int64                 `json:"total_employees"`
	ActiveEmployees int64                 `json:"active_employees"`
	ByDepartment    []DepartmentHeadcount `json:"by_department"`
	TimesheetsToday int64                 `json:"timesheets_today"`
	HoursThisMonth  float64               `json:"hours_this_month"`
}

type DashboardRepository interface {
	GetDashboardStats(date, month, year string) (*DashboardStats, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetDashboardStats(date, month, year string) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := r.db.Model(&model.Employee{}).Count(&stats.TotalEmployees).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Employee{}).Where("status = ?", model.EmployeeActive).
		Count(&stats.ActiveEmployees).Error; err != nil {
		return nil, err
	}

	if err := r.db.Table("employees").
		Select("employees.department_id, COALESCE(departments.name, '') AS department_name, COUNT(*) AS count").
		Joins("LEFT JOIN departments ON departments.id = employees.department_id").
		Where("employees.deleted_at IS NULL").
		Group("employees.department_id, departments.name").
		Scan(&stats.ByDepartment).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Timesheet{}).Where("work_date = ?", date).
		Count(&stats.TimesheetsToday).Error; err != nil {
		return nil, err
	}

	var hours struct{ Total float64 }
	if err := r.db.Model(&model.Timesheet{}).Select("COALESCE(SUM(working_hours), 0) AS total").
		Where("work_date LIKE ?", monthPattern(month, year)).
		Scan(&hours).Error; err != nil {
		return nil, err
	}
	stats.HoursThisMonth = hours.Total

	return stats, nil
}
