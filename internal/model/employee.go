package model

import "gorm.io/gorm"

const (
	EmployeeActive   = "ACTIVE"
	EmployeeInactive = "INACTIVE"
	EmployeeResigned = "RESIGNED"
)

type Employee struct {
	gorm.Model
	Code          string `json:"code" gorm:"size:32;unique;not null"`
	FullName      string `json:"full_name" gorm:"not null"`
	Gender        string `json:"gender"`
	DateOfBirth   string `json:"date_of_birth"` // YYYY-MM-DD
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	HireDate      string `json:"hire_date"`
	Status        string `json:"status" gorm:"size:16;default:ACTIVE"`
	DepartmentID  *uint  `json:"department_id"`
	PositionID    *uint  `json:"position_id"`
	SalaryGradeID *uint  `json:"salary_grade_id"`

	Department  *Department  `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	Position    *Position    `json:"position,omitempty" gorm:"foreignKey:PositionID"`
	SalaryGrade *SalaryGrade `json:"salary_grade,omitempty" gorm:"foreignKey:SalaryGradeID"`
}

func ValidEmployeeStatus(s string) bool {
	switch s {
	case EmployeeActive, EmployeeInactive, EmployeeResigned:
		return true
	}
	return false
}
