// Package impl contains the implementation of the application's business
// logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "ladle/internal/delivery/context"
	"ladle/internal/domain/entity"
	domainerrors "ladle/internal/domain/errors"
	"ladle/internal/domain/repository"
	"ladle/internal/domain/service"
	"ladle/internal/domain/validation"
	"ladle/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPasswordHash is a valid bcrypt digest of a throwaway value. Login
// compares against it when the username is unknown so both failure paths
// pay the same bcrypt cost.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	sessions  service.SessionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Sessions  service.SessionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		sessions:  params.Sessions,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back
// to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup validates the input, persists the user atomically and opens a
// session for the new account.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("username", input.Username))

	if err := validation.Username(input.Username); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := validation.Password(input.Password); err != nil {
		return nil, errors.WithStack(err)
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
		ImageURL:     input.ImageURL,
		Bio:          input.Bio,
	}

	// One transaction so a lost duplicate-username race leaves no row
	// behind.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	token, err := srv.sessions.Create(newUser.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to open session after signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to open session after signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.AuthOutput{SessionToken: token, User: newUser}, nil
}

// Login verifies credentials and opens a session. The error for an unknown
// username is indistinguishable from the error for a wrong password, in
// body and in bcrypt work done.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn the same bcrypt cost as the known-user path.
			srv.hasher.Check(input.Password, dummyPasswordHash)
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.sessions.Create(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to open session during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to open session during login")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{SessionToken: token, User: user}, nil
}

// Logout closes the session behind the token.
func (srv *userService) Logout(ctx context.Context, sessionToken string) error {
	if _, ok := srv.sessions.Get(sessionToken); !ok {
		return errors.Wrap(domainerrors.ErrUnauthorized, "logout without an active session")
	}

	srv.sessions.Clear(sessionToken)
	srv.log(ctx).Debug("Session cleared")

	return nil
}

// CheckSession resolves the token to a live user.
func (srv *userService) CheckSession(ctx context.Context, sessionToken string) (*entity.User, error) {
	userID, ok := srv.sessions.Get(sessionToken)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "no active session")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The session outlived its user; same response as no session.
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "session references a missing user")
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return user, nil
}
