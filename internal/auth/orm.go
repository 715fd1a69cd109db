package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleEmployee
}

type Users struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null"`
	Password_hash string    `json:"-" gorm:"not null"`
	Role          Role      `json:"role" gorm:"type:text;not null;default:'employee'"`
	Department    string    `json:"department" gorm:"not null"`
	Created_at    time.Time `json:"created_at" gorm:"not null"`
}

type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
	jwt.RegisteredClaims
}
