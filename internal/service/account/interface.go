package account_service

import (
	"context"

	"social-feed-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/account --outpkg account_mock --filename AccountService.go
type Service interface {
	Register(ctx context.Context, user *model.RegisterUserDTO) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
}
