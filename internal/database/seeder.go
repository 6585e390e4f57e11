package database

import (
	"fmt"
	"log"

	"hr-management-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AllPermissions is every permission the API checks.
var AllPermissions = []string{
	model.PermManageEmployees,
	model.PermManageCatalog,
	model.PermManageContracts,
	model.PermManageTimesheets,
	model.PermManagePayroll,
	model.PermManageRewards,
	model.PermManageUsers,
	model.PermViewReports,
}

// RolePermissions returns the permission names granted to each seeded role.
func RolePermissions() map[string][]string {
	hr := make([]string, 0, len(AllPermissions))
	for _, p := range AllPermissions {
		if p != model.PermManageUsers {
			hr = append(hr, p)
		}
	}
	return map[string][]string{
		model.RoleAdmin:    AllPermissions,
		model.RoleHR:       hr,
		model.RoleEmployee: {},
	}
}

// SeedAll inserts reference data and the first admin account. It is
// idempotent: existing rows are matched by their unique name or code.
func SeedAll(db *gorm.DB, adminPassword string) error {
	// 1. Permissions
	byName := make(map[string]model.Permission, len(AllPermissions))
	for _, name := range AllPermissions {
		p := model.Permission{Name: name}
		if err := db.FirstOrCreate(&p, model.Permission{Name: name}).Error; err != nil {
			return fmt.Errorf("seed permission %s: %w", name, err)
		}
		byName[name] = p
	}

	// 2. Roles with their permissions
	roleIDs := make(map[string]uint)
	for roleName, perms := range RolePermissions() {
		role := model.Role{Name: roleName}
		if err := db.FirstOrCreate(&role, model.Role{Name: roleName}).Error; err != nil {
			return fmt.Errorf("seed role %s: %w", roleName, err)
		}
		granted := make([]model.Permission, 0, len(perms))
		for _, name := range perms {
			granted = append(granted, byName[name])
		}
		if err := db.Model(&role).Association("Permissions").Replace(granted); err != nil {
			return fmt.Errorf("seed role %s permissions: %w", roleName, err)
		}
		roleIDs[roleName] = role.ID
	}

	// 3. Catalog
	departments := []model.Department{
		{Code: "HR", Name: "Human Resources"},
		{Code: "ENG", Name: "Engineering"},
		{Code: "FIN", Name: "Finance"},
	}
	for _, d := range departments {
		if err := db.FirstOrCreate(&d, model.Department{Code: d.Code}).Error; err != nil {
			return fmt.Errorf("seed department %s: %w", d.Code, err)
		}
	}

	positions := []model.Position{
		{Code: "MGR", Name: "Manager"},
		{Code: "STF", Name: "Staff"},
		{Code: "INT", Name: "Intern"},
	}
	for _, p := range positions {
		if err := db.FirstOrCreate(&p, model.Position{Code: p.Code}).Error; err != nil {
			return fmt.Errorf("seed position %s: %w", p.Code, err)
		}
	}

	grades := []model.SalaryGrade{
		{Code: "G1", Name: "Grade 1", BaseSalary: 5_000_000, Coefficient: 1, Allowance: 500_000},
		{Code: "G2", Name: "Grade 2", BaseSalary: 5_000_000, Coefficient: 1.5, Allowance: 750_000},
		{Code: "G3", Name: "Grade 3", BaseSalary: 5_000_000, Coefficient: 2.2, Allowance: 1_000_000},
	}
	for _, g := range grades {
		if err := db.FirstOrCreate(&g, model.SalaryGrade{Code: g.Code}).Error; err != nil {
			return fmt.Errorf("seed salary grade %s: %w", g.Code, err)
		}
	}

	// 4. First admin account
	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := model.User{
		Username: "admin",
		Password: string(hashed),
		FullName: "Administrator",
		RoleID:   roleIDs[model.RoleAdmin],
		IsActive: true,
	}
	if err := db.Omit("Role", "Employee").FirstOrCreate(&admin, model.User{Username: admin.Username}).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	log.Println("admin user ready")
	return nil
}
