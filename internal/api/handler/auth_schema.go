package handler

import "github.com/chemba/waste-platform/internal/core/domain"

type registerRequest struct {
	Name     string `json:"name"     validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=user startup government collector"`
	Location string `json:"location" validate:"omitempty,max=200"`
	Contact  string `json:"contact"  validate:"omitempty,max=50"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type authResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
	User         *domain.User `json:"user,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}
