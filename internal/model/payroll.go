package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	PayrollDraft = "DRAFT"
	PayrollPaid  = "PAID"

	KindReward     = "REWARD"
	KindDiscipline = "DISCIPLINE"
)

type Payroll struct {
	gorm.Model
	EmployeeID   uint       `json:"employee_id" gorm:"uniqueIndex:idx_payroll_period;not null"`
	Month        string     `json:"month" gorm:"size:2;uniqueIndex:idx_payroll_period;not null"` // "01".."12"
	Year         string     `json:"year" gorm:"size:4;uniqueIndex:idx_payroll_period;not null"`
	WorkDays     int        `json:"work_days"`
	WorkingHours float64    `json:"working_hours"`
	BaseSalary   int64      `json:"base_salary"`
	Allowance    int64      `json:"allowance"`
	Bonus        int64      `json:"bonus"`
	Deduction    int64      `json:"deduction"`
	NetSalary    int64      `json:"net_salary"`
	Status       string     `json:"status" gorm:"size:8;default:DRAFT"`
	PaidAt       *time.Time `json:"paid_at"`

	Employee Employee `json:"employee" gorm:"foreignKey:EmployeeID"`
}

// RewardDiscipline is a bonus (REWARD) or penalty (DISCIPLINE) decision.
type RewardDiscipline struct {
	gorm.Model
	EmployeeID     uint   `json:"employee_id" gorm:"index;not null"`
	Kind           string `json:"kind" gorm:"size:16;not null"`
	DecisionNumber string `json:"decision_number"`
	Date           string `json:"date" gorm:"size:10"`
	Amount         int64  `json:"amount"`
	Reason         string `json:"reason"`

	Employee Employee `json:"employee" gorm:"foreignKey:EmployeeID"`
}
