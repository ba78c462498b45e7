package dto

import "github.com/mcharewicz/oskplanner/internal/app/models"

// LoginRequest carries login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"student"`
	Password string `json:"password" binding:"required" example:"password"`
}

// RegisterRequest carries the student self-registration form
type RegisterRequest struct {
	Name            string `json:"name" binding:"required" example:"Jan"`
	Surname         string `json:"surname" binding:"required" example:"Kowalski"`
	Username        string `json:"username" binding:"required,min=3" example:"jkowalski"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	PKKNumber       string `json:"pkkNumber" binding:"required" example:"12345678901234567890"`
	GroupID         string `json:"groupId" binding:"required"`
}

// TokenResponse is returned on a successful login
type TokenResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType" example:"Bearer"`
	ExpiresIn   int          `json:"expiresIn" example:"3600"`
	User        *models.User `json:"user"`
}
