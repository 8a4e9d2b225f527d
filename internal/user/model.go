package user

import (
	"time"

	"methakadai-be/internal/auth"
)

type Role string

const (
	RoleUser  Role = auth.RoleUser
	RoleAdmin Role = auth.RoleAdmin
)

// AdminUsername is the bootstrap account created at startup.
const AdminUsername = "admin"

type User struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	ProfilePic string    `json:"profilePic"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
}

type UpdateProfileParams struct {
	Username   *string `json:"username"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	ProfilePic *string `json:"profilePic"`
}
