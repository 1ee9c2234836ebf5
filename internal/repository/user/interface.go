package user_repository

import (
	"context"

	"social-feed-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/user --outpkg user_mock --filename UserRepository.go
type Repository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
