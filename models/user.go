package models

import "time"

const (
	RoleCustomer = "customer"
	RoleStore    = "store"
)

type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	Role           string    `json:"role"`
	FullName       string    `json:"full_name"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// AuthUser is the identity resolved from a bearer token by the
// authenticator and carried through the request context.
type AuthUser struct {
	ID       int
	Username string
	Role     string
}
