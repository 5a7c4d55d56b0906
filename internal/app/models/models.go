package models

// Role identifies the kind of authenticated principal.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
)
