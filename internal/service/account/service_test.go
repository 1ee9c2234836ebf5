package account_service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"social-feed-service/internal/custom_errors"
	"social-feed-service/internal/logger"
	"social-feed-service/internal/model"
	account_service "social-feed-service/internal/service/account"
	postgres_mock "social-feed-service/mocks/postgres"
	user_mock "social-feed-service/mocks/user"
)

func validRegistration() *model.RegisterUserDTO {
	return &model.RegisterUserDTO{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "a@x.com",
		Username:  "alice",
		Password:  "password1",
	}
}

func TestAccountService_Register(t *testing.T) {
	log := logger.New("test")

	tests := []struct {
		name        string
		mocks       func(userRepo *user_mock.Repository, txRepo *user_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction)
		user        *model.RegisterUserDTO
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(userRepo *user_mock.Repository, txRepo *user_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("UserRepository").Return(txRepo)
				txRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, custom_errors.ErrUserNotFound)
				txRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Return(&model.User{ID: 1, Username: "alice", Email: "a@x.com", FirstName: "Alice", LastName: "Smith"}, nil)
				tx.On("Commit", mock.Anything).Return(nil)
			},
			user:    validRegistration(),
			wantErr: false,
		},
		{
			name:  "Validation failure short password",
			mocks: func(userRepo *user_mock.Repository, txRepo *user_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {},
			user: &model.RegisterUserDTO{
				FirstName: "Alice",
				LastName:  "Smith",
				Email:     "a@x.com",
				Username:  "alice",
				Password:  "short",
			},
			wantErr:     true,
			wantErrType: custom_errors.ErrValidationFailed,
		},
		{
			name:  "Validation failure lowercase first name",
			mocks: func(userRepo *user_mock.Repository, txRepo *user_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {},
			user: &model.RegisterUserDTO{
				FirstName: "alice",
				LastName:  "Smith",
				Email:     "a@x.com",
				Username:  "alice",
				Password:  "password1",
			},
			wantErr:     true,
			wantErrType: custom_errors.ErrValidationFailed,
		},
		{
			name:  "Validation failure email without at sign",
			mocks: func(userRepo *user_mock.Repository, txRepo *user_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {},
			user: &model.RegisterUserDTO{
				FirstName: "Alice",
				LastName:  "Smith",
				Email:     "not-an-email",
				Username:  "alice",
				Password:  "password1",
			},
			wantErr:     true,
			wantErrType: custom_errors.ErrValidationFailed,
		},
		{
			name: "Username already taken",
			mocks: func(userRepo *user_mock.Repository, txRepo *user_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("UserRepository").Return(txRepo)
				txRepo.On("GetByUsername", mock.Anything, "alice").Return(&model.User{ID: 7, Username: "alice"}, nil)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			user:        validRegistration(),
			wantErr:     true,
			wantErrType: custom_errors.ErrUsernameExists,
		},
		{
			name: "Username taken by concurrent registration",
			mocks: func(userRepo *user_mock.Repository, txRepo *user_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("UserRepository").Return(txRepo)
				txRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, custom_errors.ErrUserNotFound)
				txRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil, custom_errors.ErrUsernameExists)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			user:        validRegistration(),
			wantErr:     true,
			wantErrType: custom_errors.ErrUsernameExists,
		},
		{
			name: "Transaction begin error",
			mocks: func(userRepo *user_mock.Repository, txRepo *user_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(nil, errors.New("db error"))
			},
			user:        validRegistration(),
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
		{
			name: "Commit error",
			mocks: func(userRepo *user_mock.Repository, txRepo *user_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("UserRepository").Return(txRepo)
				txRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, custom_errors.ErrUserNotFound)
				txRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Return(&model.User{ID: 1, Username: "alice"}, nil)
				tx.On("Commit", mock.Anything).Return(errors.New("commit failed"))
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			user:        validRegistration(),
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(user_mock.Repository)
			txRepo := new(user_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tx := new(postgres_mock.Transaction)
			tt.mocks(userRepo, txRepo, uow, tx)

			service := account_service.NewAccountService(userRepo, uow, log)
			got, err := service.Register(context.Background(), tt.user)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.ErrorIs(t, err, tt.wantErrType)
				}
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.user.Username, got.Username)
			}
			uow.AssertExpectations(t)
			tx.AssertExpectations(t)
			txRepo.AssertExpectations(t)
		})
	}
}

func TestAccountService_Register_HashesPassword(t *testing.T) {
	log := logger.New("test")

	userRepo := new(user_mock.Repository)
	txRepo := new(user_mock.Repository)
	uow := new(postgres_mock.UnitOfWork)
	tx := new(postgres_mock.Transaction)

	var storedPassword string
	uow.On("Begin", mock.Anything).Return(tx, nil)
	tx.On("UserRepository").Return(txRepo)
	txRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, custom_errors.ErrUserNotFound)
	txRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		storedPassword = u.Password
		return true
	})).Return(&model.User{ID: 1, Username: "alice"}, nil)
	tx.On("Commit", mock.Anything).Return(nil)

	service := account_service.NewAccountService(userRepo, uow, log)
	_, err := service.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	assert.NotEqual(t, "password1", storedPassword, "password must never be stored verbatim")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte("password1")))
}

func TestAccountService_Login(t *testing.T) {
	log := logger.New("test")

	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	storedUser := &model.User{
		ID:        1,
		Username:  "alice",
		Password:  string(hash),
		Email:     "a@x.com",
		FirstName: "Alice",
		LastName:  "Smith",
	}

	tests := []struct {
		name        string
		mocks       func(userRepo *user_mock.Repository)
		username    string
		password    string
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(userRepo *user_mock.Repository) {
				userRepo.On("GetByUsername", mock.Anything, "alice").Return(storedUser, nil)
			},
			username: "alice",
			password: "password1",
			wantErr:  false,
		},
		{
			name: "Wrong password",
			mocks: func(userRepo *user_mock.Repository) {
				userRepo.On("GetByUsername", mock.Anything, "alice").Return(storedUser, nil)
			},
			username:    "alice",
			password:    "wrong",
			wantErr:     true,
			wantErrType: custom_errors.ErrInvalidCredentials,
		},
		{
			name: "Unknown username",
			mocks: func(userRepo *user_mock.Repository) {
				userRepo.On("GetByUsername", mock.Anything, "nobody").Return(nil, custom_errors.ErrUserNotFound)
			},
			username:    "nobody",
			password:    "password1",
			wantErr:     true,
			wantErrType: custom_errors.ErrInvalidCredentials,
		},
		{
			name: "Database error",
			mocks: func(userRepo *user_mock.Repository) {
				userRepo.On("GetByUsername", mock.Anything, "alice").Return(nil, custom_errors.ErrDatabaseQuery)
			},
			username:    "alice",
			password:    "password1",
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(user_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			tt.mocks(userRepo)

			service := account_service.NewAccountService(userRepo, uow, log)
			got, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErrType)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, storedUser.Username, got.Username)
				assert.Equal(t, storedUser.Email, got.Email)
				assert.Equal(t, storedUser.FirstName, got.FirstName)
				assert.Equal(t, storedUser.LastName, got.LastName)
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func TestAccountService_Login_UniformFailure(t *testing.T) {
	log := logger.New("test")

	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	userRepo := new(user_mock.Repository)
	uow := new(postgres_mock.UnitOfWork)
	userRepo.On("GetByUsername", mock.Anything, "alice").Return(&model.User{ID: 1, Username: "alice", Password: string(hash)}, nil)
	userRepo.On("GetByUsername", mock.Anything, "nobody").Return(nil, custom_errors.ErrUserNotFound)

	service := account_service.NewAccountService(userRepo, uow, log)

	_, wrongPasswordErr := service.Login(context.Background(), "alice", "wrong")
	_, unknownUserErr := service.Login(context.Background(), "nobody", "password1")

	assert.Equal(t, wrongPasswordErr, unknownUserErr, "wrong password and unknown user must be indistinguishable")
}
