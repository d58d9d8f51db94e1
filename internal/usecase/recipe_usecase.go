package usecase

import (
	"context"

	"ladle/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRecipeInput defines the data required to create a recipe. OwnerID
// always comes from the authenticated session, never from the request
// body.
type CreateRecipeInput struct {
	Title             string
	Instructions      string
	MinutesToComplete *int
	OwnerID           uuid.UUID
}

// RecipeUsecase is the contract the delivery layer depends on for recipe
// operations.
type RecipeUsecase interface {
	// List returns every recipe with its owner attached.
	List(ctx context.Context) ([]*entity.Recipe, error)

	// Create validates and persists a recipe owned by input.OwnerID.
	Create(ctx context.Context, input *CreateRecipeInput) (*entity.Recipe, error)
}
