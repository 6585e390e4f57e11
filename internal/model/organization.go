package model

import "gorm.io/gorm"

type Department struct {
	gorm.Model
	Code        string `json:"code" gorm:"size:32;unique;not null"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
}

type Position struct {
	gorm.Model
	Code        string `json:"code" gorm:"size:32;unique;not null"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
}

// SalaryGrade is one row of the pay scale. Amounts are whole currency units.
type SalaryGrade struct {
	gorm.Model
	Code        string  `json:"code" gorm:"size:32;unique;not null"`
	Name        string  `json:"name"`
	BaseSalary  int64   `json:"base_salary"`
	Coefficient float64 `json:"coefficient" gorm:"default:1"`
	Allowance   int64   `json:"allowance"`
}

// MonthlyBase is the grade's full-month salary before pro-rating.
func (g SalaryGrade) MonthlyBase() float64 {
	coefficient := g.Coefficient
	if coefficient <= 0 {
		coefficient = 1
	}
	return float64(g.BaseSalary) * coefficient
}
