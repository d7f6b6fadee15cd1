package user

import "time"

type Role string

const (
	RoleManager  Role = "manager"  // Can view team rollups and exports
	RoleEmployee Role = "employee" // Regular employee
)

// Departments an employee can register under.
var Departments = []string{
	"Engineering", "Marketing", "Sales", "HR",
	"Finance", "Operations", "Support",
}

type User struct {
	ID           string
	EmployeeCode string // ordinal code like EMP0001, allocated at registration
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisteredAt is the calendar day the user joined; days before it are
// never counted against their attendance.
func (u *User) RegisteredAt() time.Time {
	return u.CreatedAt
}
