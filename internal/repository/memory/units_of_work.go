package memory

import (
	"context"

	post_repository "social-feed-service/internal/repository/post"
	post_memory "social-feed-service/internal/repository/post/memory"
	"social-feed-service/internal/repository/postgres"
	user_repository "social-feed-service/internal/repository/user"
	user_memory "social-feed-service/internal/repository/user/memory"
)

// MemoryUnitOfWork hands out the shared in-memory repositories. The memory
// stores are internally synchronized, so Commit and Rollback are no-ops.
type MemoryUnitOfWork struct {
	userRepo *user_memory.UserRepository
	postRepo *post_memory.PostRepository
}

func NewMemoryUOW(userRepo *user_memory.UserRepository, postRepo *post_memory.PostRepository) postgres.UnitOfWork {
	return &MemoryUnitOfWork{userRepo: userRepo, postRepo: postRepo}
}

func (uow *MemoryUnitOfWork) Begin(ctx context.Context) (postgres.Transaction, error) {
	return &MemoryTransaction{userRepo: uow.userRepo, postRepo: uow.postRepo}, nil
}

type MemoryTransaction struct {
	userRepo *user_memory.UserRepository
	postRepo *post_memory.PostRepository
}

func (t *MemoryTransaction) Commit(ctx context.Context) error {
	return nil
}

func (t *MemoryTransaction) Rollback(ctx context.Context) error {
	return nil
}

func (t *MemoryTransaction) UserRepository() user_repository.Repository {
	return t.userRepo
}

func (t *MemoryTransaction) PostRepository() post_repository.Repository {
	return t.postRepo
}
