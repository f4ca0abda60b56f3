package models

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
	RoleHR       Role = "hr"
)

// Roles lists every role in the order the login page shows its cards.
var Roles = []Role{RoleEmployee, RoleManager, RoleHR}

// User is the demo user record kept in the session.
// Password is plaintext on purpose: this is a prototype, not an identity system.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// DisplayName is what the header shows, e.g. "Alicia Patel (MANAGER)".
func (u User) DisplayName() string {
	return fmt.Sprintf("%s (%s)", u.Name, strings.ToUpper(string(u.Role)))
}

func (r Role) Title() string {
	switch r {
	case RoleEmployee:
		return "Employee login"
	case RoleManager:
		return "Manager login"
	case RoleHR:
		return "HR login"
	}
	return "Login"
}
