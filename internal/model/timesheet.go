package model

import "gorm.io/gorm"

// Timesheet is one employee's attendance for one calendar date.
// WorkingHours is derived from WorkDate, CheckIn and CheckOut on every write.
type Timesheet struct {
	gorm.Model
	EmployeeID   uint    `json:"employee_id" gorm:"uniqueIndex:idx_timesheet_employee_date;not null"`
	WorkDate     string  `json:"work_date" gorm:"size:10;uniqueIndex:idx_timesheet_employee_date;not null"`
	CheckIn      string  `json:"check_in" gorm:"size:8"`
	CheckOut     string  `json:"check_out" gorm:"size:8"`
	WorkingHours float64 `json:"working_hours"`
	Note         string  `json:"note"`

	Employee Employee `json:"employee" gorm:"foreignKey:EmployeeID"`
}
