package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"social-feed-service/internal/custom_errors"
	"social-feed-service/internal/logger"
	"social-feed-service/internal/metrics"
	"social-feed-service/internal/model"
	"social-feed-service/internal/repository/postgres/db"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.MetricsProvider
}

func NewUserRepository(db db.PgDB, log *logger.Logger, provider metrics.MetricsProvider) *UserRepository {
	return &UserRepository{db: db, log: log, metrics: provider}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	start := time.Now()
	now := pgtype.Timestamp{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"username":   user.Username,
		"password":   user.Password,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"created_at": now,
	}

	query := `
		INSERT INTO users (username, password, email, first_name, last_name, created_at)
		VALUES (@username, @password, @email, @first_name, @last_name, @created_at)
		RETURNING id, username, password, email, first_name, last_name, created_at`

	var createdUser model.User
	err := u.db.QueryRow(ctx, query, args).Scan(
		&createdUser.ID,
		&createdUser.Username,
		&createdUser.Password,
		&createdUser.Email,
		&createdUser.FirstName,
		&createdUser.LastName,
		&createdUser.CreatedAt,
	)

	if err != nil {
		u.metrics.IncrementDatabaseQueries("user_create", false)
		u.metrics.RecordDatabaseQueryDuration("user_create", time.Since(start))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			u.log.Debug("Username already taken", slog.String("username", user.Username))
			return nil, custom_errors.ErrUsernameExists
		}
		u.log.Error("Error creating user", slog.String("username", user.Username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.metrics.IncrementDatabaseQueries("user_create", true)
	u.metrics.RecordDatabaseQueryDuration("user_create", time.Since(start))
	return &createdUser, nil
}

func (u *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	start := time.Now()
	args := pgx.NamedArgs{"username": username}
	query := `SELECT id, username, password, email, first_name, last_name, created_at
				FROM users WHERE username = @username`
	row := u.db.QueryRow(ctx, query, args)
	user := &model.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
	)
	if err != nil {
		u.metrics.IncrementDatabaseQueries("user_get_by_username", false)
		u.metrics.RecordDatabaseQueryDuration("user_get_by_username", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by username", slog.String("username", username))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by username", slog.String("username", username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	u.metrics.IncrementDatabaseQueries("user_get_by_username", true)
	u.metrics.RecordDatabaseQueryDuration("user_get_by_username", time.Since(start))
	return user, nil
}
