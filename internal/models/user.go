// Package models defines the FleetDesk entity records and their enums.
// Field sets and JSON tags match the persisted collection layout.
package models

// Role classifies a user's access level.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleInspector Role = "Inspector"
	RoleEngineer  Role = "Engineer"
)

// User is a seeded account. Users are immutable: there is no create, update,
// or delete path in the public contract. Passwords are stored and compared in
// plaintext; this is a record-keeping tool, not a security boundary.
type User struct {
	ID       string `json:"id"`
	Role     Role   `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
