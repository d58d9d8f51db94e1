package impl

import (
	"context"
	"log/slog"

	deliverycontext "ladle/internal/delivery/context"
	"ladle/internal/domain/entity"
	"ladle/internal/domain/repository"
	"ladle/internal/domain/validation"
	"ladle/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager  repository.TransactionManager
	recipeRepo repository.RecipeRepository
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for recipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecipeRepo repository.RecipeRepository
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:  params.TxManager,
		recipeRepo: params.RecipeRepo,
		logger:     params.Logger,
	}
}

func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns every recipe with its owner attached.
func (srv *recipeService) List(ctx context.Context) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list recipes", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

// Create validates and persists a recipe owned by input.OwnerID.
func (srv *recipeService) Create(ctx context.Context, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	if err := validation.RecipeTitle(input.Title); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := validation.RecipeInstructions(input.Instructions); err != nil {
		return nil, errors.WithStack(err)
	}

	recipe := &entity.Recipe{
		Title:             input.Title,
		Instructions:      input.Instructions,
		MinutesToComplete: input.MinutesToComplete,
		UserID:            input.OwnerID,
	}

	// Insert and reload in one transaction so the returned row carries the
	// store-assigned fields and the owner, as the response embeds both.
	var stored *entity.Recipe
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		recipes := repoFactory.RecipeRepo()
		if err := recipes.Create(ctx, recipe); err != nil {
			return err
		}

		created, err := recipes.FindByID(ctx, recipe.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload created recipe")
		}
		stored = created

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Recipe creation failed", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create recipe")
	}

	srv.log(ctx).Debug("Recipe created", slog.Any("recipeID", stored.ID), slog.Any("ownerID", stored.UserID))

	return stored, nil
}
