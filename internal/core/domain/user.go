package domain

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleRider  Role = "rider"
	RoleAdmin  Role = "admin"
)

type User struct {
	ID       uuid.UUID
	Login    string
	Password string
	Role     Role
	Address  string
	// LoginCode is a short human-readable code issued to riders at
	// registration, empty for other roles.
	LoginCode string
}
