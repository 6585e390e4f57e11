package model

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username   string    `json:"username" gorm:"size:64;unique;not null"`
	Password   string    `json:"-" gorm:"not null"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	RoleID     uint      `json:"role_id"`
	EmployeeID *uint     `json:"employee_id"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
	Role       Role      `json:"role" gorm:"foreignKey:RoleID"`
	Employee   *Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}
