package repository

import (
	"context"
	"errors"

	"ladle/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is returned when no recipe matches the lookup.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the standard operations for recipe persistence.
type RecipeRepository interface {
	// Create persists a new recipe. A missing owner surfaces as
	// domain errors.ErrRecipeOwnerMissing.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByID retrieves a recipe by id with its owner preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)

	// List returns every recipe with its owner preloaded.
	List(ctx context.Context) ([]*entity.Recipe, error)
}
