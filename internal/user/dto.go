package user

import "time"

type RegisterDTO struct {
	Email       string     `json:"email" validate:"required,email"`
	Password    string     `json:"password" validate:"required,min=8"`
	DisplayName string     `json:"display_name" validate:"required"`
	Role        Role       `json:"role"`
	AvatarID    string     `json:"avatar_id"`
	BirthDate   *time.Time `json:"birth_date"`
}

type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginDTO struct {
	Code string `json:"code" validate:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type UpdateProfileDTO struct {
	DisplayName *string    `json:"display_name,omitempty"`
	AvatarID    *string    `json:"avatar_id,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
}

type TokenPairResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        Role       `json:"role"`
	AvatarID    string     `json:"avatar_id"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toResponse(u *User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		AvatarID:    u.AvatarID,
		BirthDate:   u.BirthDate,
		CreatedAt:   u.CreatedAt,
	}
}
