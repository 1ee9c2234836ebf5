package account_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"social-feed-service/internal/custom_errors"
	"social-feed-service/internal/logger"
	"social-feed-service/internal/model"
	"social-feed-service/internal/repository/postgres"
	user_repository "social-feed-service/internal/repository/user"
)

const minPasswordLength = 8

type AccountService struct {
	userRepo user_repository.Repository
	uow      postgres.UnitOfWork
	log      *logger.Logger
}

func NewAccountService(userRepo user_repository.Repository, uow postgres.UnitOfWork, log *logger.Logger) *AccountService {
	return &AccountService{
		userRepo: userRepo,
		uow:      uow,
		log:      log,
	}
}

// Register re-validates the caller-side form rules defensively, hashes the
// password and inserts the user. The username-free check and the insert run
// in one transaction, with the unique constraint on username as the final
// arbiter of concurrent registrations.
func (s *AccountService) Register(ctx context.Context, user *model.RegisterUserDTO) (result *model.User, err error) {
	if err := validateRegistration(user); err != nil {
		s.log.Debug("Registration validation failed",
			slog.String("username", user.Username),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrValidationFailed
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, err
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
	}()

	userRepo := tx.UserRepository()

	_, err = userRepo.GetByUsername(ctx, user.Username)
	if err == nil {
		s.log.Debug("Username already taken", slog.String("username", user.Username))
		return nil, custom_errors.ErrUsernameExists
	}
	if !errors.Is(err, custom_errors.ErrUserNotFound) {
		s.log.Error("Failed to check username availability",
			slog.String("username", user.Username),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	newUser := &model.User{
		Username:  user.Username,
		Password:  string(hashed),
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	createdUser, err := userRepo.Create(ctx, newUser)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUsernameExists) {
			s.log.Debug("Username taken by concurrent registration", slog.String("username", user.Username))
			return nil, custom_errors.ErrUsernameExists
		}
		s.log.Error("Failed to create user",
			slog.String("username", user.Username),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	err = tx.Commit(ctx)
	if err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return createdUser, nil
}

// Login verifies credentials. An unknown username and a wrong password are
// both reported as ErrInvalidCredentials so callers cannot tell them apart.
func (s *AccountService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Login failed", slog.String("username", username))
			return nil, custom_errors.ErrInvalidCredentials
		}
		s.log.Error("Failed to get user for login",
			slog.String("username", username),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.log.Debug("Login failed", slog.String("username", username))
		return nil, custom_errors.ErrInvalidCredentials
	}

	return user, nil
}

func validateRegistration(user *model.RegisterUserDTO) error {
	if user.Username == "" {
		return errors.New("username must not be empty")
	}
	if utf8.RuneCountInString(user.Password) < minPasswordLength {
		return errors.New("password must be at least 8 characters")
	}
	if !strings.Contains(user.Email, "@") {
		return errors.New("email must contain @")
	}
	if !startsWithUpper(user.FirstName) {
		return errors.New("first name must start with an uppercase letter")
	}
	if !startsWithUpper(user.LastName) {
		return errors.New("last name must start with an uppercase letter")
	}
	return nil
}

func startsWithUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return false
	}
	return unicode.IsUpper(r)
}
