package postgres

import (
	"context"

	"ladle/internal/domain/entity"
	domainerrors "ladle/internal/domain/errors"
	"ladle/internal/domain/repository"
	"ladle/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// recipeRepository implements repository.RecipeRepository using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists a new recipe, translating constraint breaches to domain
// errors.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRecipeOwnerMissing.WrapMessage("recipe owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "missing required recipe column"))
		}

		return domainerrors.NewDatabaseExecuteError(errors.Wrap(err, "failed to create recipe"))
	}

	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// FindByID retrieves a recipe by id with its owner preloaded.
func (repo *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&recipeM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// List returns every recipe with its owner preloaded.
func (repo *recipeRepository) List(ctx context.Context) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Order("created_at").
		Find(&recipeModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// --- Mapper functions ---

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
// The owner, when preloaded, is mapped without its recipe set; the
// serializer never needs more than one hop.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	recipe := &entity.Recipe{
		ID:                data.ID,
		Title:             data.Title,
		Instructions:      data.Instructions,
		MinutesToComplete: data.MinutesToComplete,
		UserID:            data.UserID,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}

	if data.User != nil {
		recipe.User = &entity.User{
			ID:           data.User.ID,
			Username:     data.User.Username,
			PasswordHash: data.User.PasswordHash,
			ImageURL:     data.User.ImageURL,
			Bio:          data.User.Bio,
			CreatedAt:    data.User.CreatedAt,
			UpdatedAt:    data.User.UpdatedAt,
		}
	}

	return recipe
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:                data.ID,
		Title:             data.Title,
		Instructions:      data.Instructions,
		MinutesToComplete: data.MinutesToComplete,
		UserID:            data.UserID,
	}
}
