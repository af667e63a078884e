package types

import (
	"github.com/devhive/backend/internal/models"
)

// SignupRequest represents the request body for creating a profile
type SignupRequest struct {
	Username        string        `json:"username" binding:"required"`
	Firstname       string        `json:"firstname" binding:"required"`
	Middlename      string        `json:"middlename"`
	Lastname        string        `json:"lastname"`
	Password        string        `json:"password" binding:"required,min=8"`
	ConfirmPassword string        `json:"confirm_password" binding:"required,eqfield=Password"`
	Bio             string        `json:"bio"`
	Stacks          []string      `json:"stacks"`
	Links           []models.Link `json:"links"`
}

// LoginRequest represents the request body for signing in
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SearchRequest represents the request body for the profile search
type SearchRequest struct {
	Search string `json:"search"`
}

// VerifyTokenRequest represents the request body for token verification
type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// RefreshRequest is the optional body fallback for the refresh endpoint;
// normally the refresh token arrives in the HttpOnly cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// UpdateDevRequest represents the request body for updating a profile.
// Optional fields are pointers so "absent" and "set to empty" stay distinct.
type UpdateDevRequest struct {
	ID         string         `json:"id" binding:"required"`
	Username   *string        `json:"username"`
	Firstname  *string        `json:"firstname"`
	Middlename *string        `json:"middlename"`
	Lastname   *string        `json:"lastname"`
	Bio        *string        `json:"bio"`
	Stacks     *[]string      `json:"stacks"`
	Links      *[]models.Link `json:"links"`
	Password   *string        `json:"password"`
}

// HasUpdates reports whether at least one mutable field was provided
func (r *UpdateDevRequest) HasUpdates() bool {
	return r.Username != nil || r.Firstname != nil || r.Middlename != nil ||
		r.Lastname != nil || r.Bio != nil || r.Stacks != nil ||
		r.Links != nil || r.Password != nil
}
