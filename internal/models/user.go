package models

import "time"

type User struct {
	ID                   uint       `json:"id" gorm:"primaryKey"`
	Email                string     `json:"email" gorm:"uniqueIndex;size:320;not null"`
	Password             string     `json:"-" gorm:"size:60;not null"`
	LastLogin            time.Time  `json:"last_login"`
	PasswordResetLink    *string    `json:"-" gorm:"size:100"`
	PasswordResetExpires *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type UserRegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

type UserUpdateRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

type AuthResponse struct {
	ID    uint   `json:"id"`
	Token string `json:"token"`
}
