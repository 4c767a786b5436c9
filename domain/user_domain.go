package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "User created successfully"
	MessageSuccessLogin    = "Login successful"
	MessageSuccessGetUsers = "users retrieved successfully"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetUsers = "failed to retrieve users"

	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	// AuthResponse is returned by both register and login.
	AuthResponse struct {
		Token string      `json:"token"`
		User  UserPayload `json:"user"`
	}

	UserPayload struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		UserID string `json:"userId"`
	}

	UserResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
)
