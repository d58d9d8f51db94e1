package repository

import "context"

// RepositoryFactory hands out repository instances bound to one
// transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	RecipeRepo() RecipeRepository
}

// TransactionManager runs a function inside a single database transaction.
// If fn returns an error the transaction rolls back and the error is
// returned unchanged.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
