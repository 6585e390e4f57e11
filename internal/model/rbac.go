package model

import "gorm.io/gorm"

const (
	RoleAdmin    = "Admin"
	RoleHR       = "HR"
	RoleEmployee = "Employee"
)

const (
	PermManageEmployees  = "manage_employees"
	PermManageCatalog    = "manage_catalog"
	PermManageContracts  = "manage_contracts"
	PermManageTimesheets = "manage_timesheets"
	PermManagePayroll    = "manage_payroll"
	PermManageRewards    = "manage_rewards"
	PermManageUsers      = "manage_users"
	PermViewReports      = "view_reports"
)

type Role struct {
	gorm.Model
	Name        string       `json:"name" gorm:"size:64;unique;not null"`
	Permissions []Permission `json:"permissions" gorm:"many2many:role_permissions;"`
}

type Permission struct {
	gorm.Model
	Name string `json:"name" gorm:"size:64;unique;not null"`
}

// HasPermission reports whether the role grants name.
func (r Role) HasPermission(name string) bool {
	for _, p := range r.Permissions {
		if p.Name == name {
			return true
		}
	}
	return false
}
