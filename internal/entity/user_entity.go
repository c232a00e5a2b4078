package entity

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	Id                uint
	Username          string
	PasswordHash      string
	Role              UserRole
	IsPremium         bool
	FavoriteQuestions []int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
