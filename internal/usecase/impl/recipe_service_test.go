package impl

import (
	"context"
	"testing"

	"ladle/internal/domain/entity"
	domainerrors "ladle/internal/domain/errors"
	"ladle/internal/domain/repository"
	mockRepo "ladle/internal/mocks/repository"
	"ladle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validInstructions = "Whisk the eggs, fold in the flour, rest the batter for ten minutes, then fry."

// recipeServiceFixtures holds all test dependencies for recipe service tests.
type recipeServiceFixtures struct {
	service    usecase.RecipeUsecase
	txManager  *mockRepo.MockTransactionManager
	recipeRepo *mockRepo.MockRecipeRepository
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)

	service := NewRecipeService(RecipeServiceParams{
		TxManager:  txManager,
		RecipeRepo: recipeRepo,
		Logger:     newDiscardLogger(),
	})

	return recipeServiceFixtures{
		service:    service,
		txManager:  txManager,
		recipeRepo: recipeRepo,
	}
}

func TestRecipeService_List_Success(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipes := []*entity.Recipe{
		{ID: uuid.New(), Title: "Shakshuka", User: &entity.User{Username: "chef_anna"}},
		{ID: uuid.New(), Title: "Crepes", User: &entity.User{Username: "chef_ben"}},
	}

	fx.recipeRepo.EXPECT().List(ctx).Return(recipes, nil)

	got, err := fx.service.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, recipes, got)
}

func TestRecipeService_List_RepositoryError(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()

	fx.recipeRepo.EXPECT().List(ctx).Return(nil, errors.New("connection reset"))

	got, err := fx.service.List(ctx)

	assert.Nil(t, got)
	assert.Error(t, err)
}

func TestRecipeService_Create_Success(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipeID := uuid.New()
	owner := &entity.User{ID: ownerID, Username: "chef_anna"}
	minutes := 25

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)

			mockRecipeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Recipe")).
				Run(func(ctx context.Context, recipe *entity.Recipe) {
					recipe.ID = recipeID
				}).
				Return(nil)

			// The reload returns the stored row with its owner attached.
			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(&entity.Recipe{
					ID:                recipeID,
					Title:             "Crepes",
					Instructions:      validInstructions,
					MinutesToComplete: &minutes,
					UserID:            ownerID,
					User:              owner,
				}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	recipe, err := fx.service.Create(ctx, &usecase.CreateRecipeInput{
		Title:             "Crepes",
		Instructions:      validInstructions,
		MinutesToComplete: &minutes,
		OwnerID:           ownerID,
	})

	require.NoError(t, err)
	require.NotNil(t, recipe)
	assert.Equal(t, recipeID, recipe.ID)
	assert.Equal(t, "Crepes", recipe.Title)
	assert.Equal(t, ownerID, recipe.UserID)
	assert.Equal(t, owner, recipe.User)
}

func TestRecipeService_Create_MissingTitle(t *testing.T) {
	fx := createTestRecipeService(t)

	recipe, err := fx.service.Create(context.Background(), &usecase.CreateRecipeInput{
		Title:        "",
		Instructions: validInstructions,
		OwnerID:      uuid.New(),
	})

	assert.Nil(t, recipe)
	assert.True(t, errors.Is(err, domainerrors.ErrTitleRequired))
}

func TestRecipeService_Create_ShortInstructions(t *testing.T) {
	fx := createTestRecipeService(t)

	recipe, err := fx.service.Create(context.Background(), &usecase.CreateRecipeInput{
		Title:        "Crepes",
		Instructions: "Mix and fry.",
		OwnerID:      uuid.New(),
	})

	assert.Nil(t, recipe)
	assert.True(t, errors.Is(err, domainerrors.ErrInstructionsTooShort))
}

func TestRecipeService_Create_MissingOwner(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(domainerrors.ErrRecipeOwnerMissing, "owner row is gone"))

	recipe, err := fx.service.Create(ctx, &usecase.CreateRecipeInput{
		Title:        "Crepes",
		Instructions: validInstructions,
		OwnerID:      ownerID,
	})

	assert.Nil(t, recipe)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeOwnerMissing))
}

func TestRecipeService_Create_ReloadFailureRollsBack(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	recipeID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRecipeRepo := mockRepo.NewMockRecipeRepository(t)

			mockFactory.EXPECT().RecipeRepo().Return(mockRecipeRepo)

			mockRecipeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Recipe")).
				Run(func(ctx context.Context, recipe *entity.Recipe) {
					recipe.ID = recipeID
				}).
				Return(nil)

			mockRecipeRepo.EXPECT().
				FindByID(ctx, recipeID).
				Return(nil, repository.ErrRecipeNotFound)

			// The manager surfaces fn's error unchanged, as the real one does
			// after rolling back.
			return fn(mockFactory)
		})

	recipe, err := fx.service.Create(ctx, &usecase.CreateRecipeInput{
		Title:        "Crepes",
		Instructions: validInstructions,
		OwnerID:      uuid.New(),
	})

	assert.Nil(t, recipe)
	assert.True(t, errors.Is(err, repository.ErrRecipeNotFound))
}
