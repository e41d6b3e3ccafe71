package dto

import "github.com/SscSPs/personal_ledger_app/internal/core/domain"

// RegisterUserRequest defines the data needed to register a new user.
type RegisterUserRequest struct {
	Name       string `json:"name" binding:"required,notblank"`
	Email      string `json:"email" binding:"required,email"`
	Credential string `json:"password" binding:"required,notblank"`
}

// UserResponse defines the data returned for a user. The credential is never included.
type UserResponse struct {
	UserID int64  `json:"userID"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID: user.UserID,
		Name:   user.Name,
		Email:  user.Email,
	}
}
