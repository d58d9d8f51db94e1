// Package repository defines the interfaces for the persistence layer.
// These interfaces are the contract between the domain/usecase layers and
// the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ladle/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a user by id, preloading their recipes.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user. A duplicate username surfaces as
	// domain errors.ErrUsernameTaken.
	Create(ctx context.Context, user *entity.User) error

	// Delete removes a user. The store cascades the delete to every
	// recipe the user owns; no orphaned recipe may remain.
	Delete(ctx context.Context, id uuid.UUID) error
}
