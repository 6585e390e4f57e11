package database

import (
	"testing"

	"hr-management-backend/internal/model"
)

func TestRolePermissions(t *testing.T) {
	perms := RolePermissions()

	if got := len(perms[model.RoleAdmin]); got != len(AllPermissions) {
		t.Fatalf("admin permissions = %d, want %d", got, len(AllPermissions))
	}
	if len(perms[model.RoleEmployee]) != 0 {
		t.Fatalf("employee should have no permissions, got %v", perms[model.RoleEmployee])
	}

	hr := perms[model.RoleHR]
	if len(hr) != len(AllPermissions)-1 {
		t.Fatalf("hr permissions = %d, want %d", len(hr), len(AllPermissions)-1)
	}
	for _, p := range hr {
		if p == model.PermManageUsers {
			t.Fatalf("hr must not manage users")
		}
	}
}
