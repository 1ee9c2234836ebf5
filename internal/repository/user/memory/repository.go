package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"social-feed-service/internal/custom_errors"
	"social-feed-service/internal/logger"
	"social-feed-service/internal/model"
)

type UserRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	users  map[string]*model.User
	nextID int64
}

func NewUserRepository(log *logger.Logger) *UserRepository {
	return &UserRepository{
		log:    log,
		users:  make(map[string]*model.User),
		nextID: 1,
	}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.users[user.Username]; exists {
		u.log.Debug("Username already taken", slog.String("username", user.Username))
		return nil, custom_errors.ErrUsernameExists
	}

	newUser := &model.User{
		ID:        u.nextID,
		Username:  user.Username,
		Password:  user.Password,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: pgtype.Timestamp{Time: time.Now(), Valid: true},
	}
	u.nextID++

	u.users[newUser.Username] = newUser

	result := *newUser
	return &result, nil
}

func (u *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.users[username]
	if !exists {
		u.log.Debug("User not found by username", slog.String("username", username))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}
