package impl

import (
	"context"
	"testing"

	"ladle/internal/domain/entity"
	domainerrors "ladle/internal/domain/errors"
	"ladle/internal/domain/repository"
	mockRepo "ladle/internal/mocks/repository"
	mockSvc "ladle/internal/mocks/service"
	"ladle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	sessions  *mockSvc.MockSessionManager
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessions := mockSvc.NewMockSessionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Sessions:  sessions,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		sessions:  sessions,
		hasher:    hasher,
	}
}

func TestUserService_Signup_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "chef_anna",
		Password: "secret123",
		ImageURL: "https://example.com/anna.png",
		Bio:      "Weeknight cook",
	}
	newUserID := uuid.New()

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = newUserID
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.sessions.EXPECT().Create(newUserID).Return("session-token", nil)

	output, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "session-token", output.SessionToken)
	assert.Equal(t, input.Username, output.User.Username)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.Equal(t, newUserID, output.User.ID)
}

func TestUserService_Signup_BlankUsername(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
		Username: "   ",
		Password: "secret123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameRequired))
}

func TestUserService_Signup_MissingPassword(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
		Username: "chef_anna",
		Password: "",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordRequired))
}

func TestUserService_Signup_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Username: "chef_anna",
		Password: "secret123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.Wrap(domainerrors.ErrUsernameTaken, "duplicate username"))

	output, err := fx.service.Signup(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestUserService_Signup_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().Hash("secret123").Return("", errors.New("boom"))

	output, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
		Username: "chef_anna",
		Password: "secret123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "chef_anna",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "chef_anna").Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed_password").Return(true)
	fx.sessions.EXPECT().Create(user.ID).Return("session-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "chef_anna",
		Password: "secret123",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "session-token", output.SessionToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_UnknownUsername(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "nobody").
		Return(nil, repository.ErrUserNotFound)
	// The dummy compare keeps the unknown-username path as slow as the
	// wrong-password path.
	fx.hasher.EXPECT().Check("secret123", dummyPasswordHash).Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "nobody",
		Password: "secret123",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "chef_anna",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "chef_anna").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Username: "chef_anna",
		Password: "wrong",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Logout_Success(t *testing.T) {
	fx := createTestUserService(t)

	fx.sessions.EXPECT().Get("session-token").Return(uuid.New(), true)
	fx.sessions.EXPECT().Clear("session-token").Return()

	err := fx.service.Logout(context.Background(), "session-token")

	require.NoError(t, err)
}

func TestUserService_Logout_UnknownToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.sessions.EXPECT().Get("stale-token").Return(uuid.Nil, false)

	err := fx.service.Logout(context.Background(), "stale-token")

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestUserService_CheckSession_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:       uuid.New(),
		Username: "chef_anna",
		Recipes: []*entity.Recipe{
			{ID: uuid.New(), Title: "Shakshuka"},
		},
	}

	fx.sessions.EXPECT().Get("session-token").Return(user.ID, true)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	got, err := fx.service.CheckSession(ctx, "session-token")

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_CheckSession_UnknownToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.sessions.EXPECT().Get("stale-token").Return(uuid.Nil, false)

	got, err := fx.service.CheckSession(context.Background(), "stale-token")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestUserService_CheckSession_DeletedUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.sessions.EXPECT().Get("session-token").Return(userID, true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.CheckSession(ctx, "session-token")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
