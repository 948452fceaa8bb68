package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleTeacher
}

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	DisplayName  string     `gorm:"not null" json:"display_name"`
	Role         Role       `gorm:"type:varchar(16);not null;default:'student'" json:"role"`
	AvatarID     string     `json:"avatar_id"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`

	// Refresh tokens are stored encrypted at rest. Google tokens are only
	// present for accounts linked through Google sign-in.
	EncryptedRefreshToken       string `json:"-"`
	EncryptedGoogleAccessToken  string `json:"-"`
	EncryptedGoogleRefreshToken string `json:"-"`
	GoogleID                    string `gorm:"index" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
