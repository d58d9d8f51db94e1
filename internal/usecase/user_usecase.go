// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ladle/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Username string
	Password string
	ImageURL string
	Bio      string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user together with the opaque
// session token the delivery layer puts in the cookie.
type AuthOutput struct {
	SessionToken string
	User         *entity.User
}

// UserUsecase is the contract the delivery layer depends on for account
// and session operations.
type UserUsecase interface {
	// Signup validates the input, persists the user and opens a session.
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)

	// Login verifies credentials and opens a session. Unknown username and
	// wrong password produce the same error.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Logout closes the session behind the token.
	Logout(ctx context.Context, sessionToken string) error

	// CheckSession resolves the token to a live user, failing with
	// Unauthorized when the session is missing or references a user that
	// no longer exists.
	CheckSession(ctx context.Context, sessionToken string) (*entity.User, error)
}
