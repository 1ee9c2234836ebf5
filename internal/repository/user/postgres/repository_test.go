package user_repository_postgres_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"social-feed-service/internal/custom_errors"
	"social-feed-service/internal/logger"
	"social-feed-service/internal/model"
	user_repository_postgres "social-feed-service/internal/repository/user/postgres"
	metrics_mock "social-feed-service/mocks/metrics"
)

type stubRow struct {
	err error
}

func (r stubRow) Scan(dest ...any) error {
	return r.err
}

type stubDB struct {
	rowErr error
}

func (s stubDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, s.rowErr
}

func (s stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return stubRow{err: s.rowErr}
}

func (s stubDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, s.rowErr
}

func TestUserRepository_QueryMetrics(t *testing.T) {
	log := logger.New("test")

	t.Run("GetByUsername not found records a failed query", func(t *testing.T) {
		provider := metrics_mock.NewMetricsProvider(t)
		provider.On("IncrementDatabaseQueries", "user_get_by_username", false).Once()
		provider.On("RecordDatabaseQueryDuration", "user_get_by_username", mock.AnythingOfType("time.Duration")).Once()

		repo := user_repository_postgres.NewUserRepository(stubDB{rowErr: pgx.ErrNoRows}, log, provider)
		_, err := repo.GetByUsername(context.Background(), "nobody")

		assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
	})

	t.Run("GetByUsername success records a successful query", func(t *testing.T) {
		provider := metrics_mock.NewMetricsProvider(t)
		provider.On("IncrementDatabaseQueries", "user_get_by_username", true).Once()
		provider.On("RecordDatabaseQueryDuration", "user_get_by_username", mock.AnythingOfType("time.Duration")).Once()

		repo := user_repository_postgres.NewUserRepository(stubDB{}, log, provider)
		_, err := repo.GetByUsername(context.Background(), "alice")

		assert.NoError(t, err)
	})

	t.Run("Create duplicate username records a failed query", func(t *testing.T) {
		provider := metrics_mock.NewMetricsProvider(t)
		provider.On("IncrementDatabaseQueries", "user_create", false).Once()
		provider.On("RecordDatabaseQueryDuration", "user_create", mock.AnythingOfType("time.Duration")).Once()

		duplicateErr := &pgconn.PgError{Code: "23505"}
		repo := user_repository_postgres.NewUserRepository(stubDB{rowErr: duplicateErr}, log, provider)
		_, err := repo.Create(context.Background(), &model.User{Username: "alice"})

		assert.ErrorIs(t, err, custom_errors.ErrUsernameExists)
	})
}
