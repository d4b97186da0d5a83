package dto

import (
	"cruisevoyager/internal/domains/user/model"
)

type UserResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	EmailVerified bool   `json:"emailVerified"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.EmailVerified = model.EmailVerified
}

type UpdateProfileRequest struct {
	FirstName string `db:"first_name" json:"firstName" validate:"omitempty,max=100"`
	LastName  string `db:"last_name"  json:"lastName"  validate:"omitempty,max=100"`
	Email     string `db:"email"      json:"email"     validate:"omitempty,email,max=100"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=6,max=72"`
}
