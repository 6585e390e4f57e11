package model

// All lists every persisted model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Permission{},
		&Role{},
		&Department{},
		&Position{},
		&SalaryGrade{},
		&Employee{},
		&User{},
		&Contract{},
		&Timesheet{},
		&Payroll{},
		&RewardDiscipline{},
	}
}
