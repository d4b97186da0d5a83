package dto

import (
	"time"

	"cruisevoyager/internal/domains/auth/model"
	userModel "cruisevoyager/internal/domains/user/model"
	gModel "cruisevoyager/shared/model"
	"cruisevoyager/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username  string `json:"username"  validate:"required,min=3,max=50"`
	Email     string `json:"email"     validate:"required,email,max=100"`
	Password  string `json:"password"  validate:"required,min=6,max=72"`
	FirstName string `json:"firstName" validate:"omitempty,max=100"`
	LastName  string `json:"lastName"  validate:"omitempty,max=100"`
}

// ToModel builds the user record from an already-hashed credential.
func (r *RegisterRequest) ToModel(hashedPassword string) userModel.User {
	id := uuid.NewString()

	return userModel.User{
		ID:        id,
		Username:  r.Username,
		Email:     r.Email,
		Password:  hashedPassword,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"       validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=72"`
}

// NewToken mints a single-use token record of the given kind.
func NewToken(userID, kind string, ttl time.Duration) model.Token {
	now := timezone.Now()

	return model.Token{
		ID:        uuid.NewString(),
		UserID:    userID,
		Token:     uuid.NewString(),
		Kind:      kind,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}
