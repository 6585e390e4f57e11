package model

import "gorm.io/gorm"

const (
	ContractProbation  = "PROBATION"
	ContractFixedTerm  = "FIXED_TERM"
	ContractIndefinite = "INDEFINITE"

	ContractActive     = "ACTIVE"
	ContractExpired    = "EXPIRED"
	ContractTerminated = "TERMINATED"
)

type Contract struct {
	gorm.Model
	ContractNumber string `json:"contract_number" gorm:"size:64;unique;not null"`
	EmployeeID     uint   `json:"employee_id" gorm:"index;not null"`
	Type           string `json:"type" gorm:"size:16"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"` // empty for INDEFINITE
	SalaryGradeID  *uint  `json:"salary_grade_id"`
	Status         string `json:"status" gorm:"size:16;default:ACTIVE"`
	Note           string `json:"note"`

	Employee    Employee     `json:"employee" gorm:"foreignKey:EmployeeID"`
	SalaryGrade *SalaryGrade `json:"salary_grade,omitempty" gorm:"foreignKey:SalaryGradeID"`
}
