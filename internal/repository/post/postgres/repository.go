package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"social-feed-service/internal/custom_errors"
	"social-feed-service/internal/logger"
	"social-feed-service/internal/metrics"
	"social-feed-service/internal/model"
	"social-feed-service/internal/repository/postgres/db"
)

type PostRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.MetricsProvider
}

func NewPostRepository(db db.PgDB, log *logger.Logger, provider metrics.MetricsProvider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: provider}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	now := pgtype.Timestamp{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"author_username": post.AuthorUsername,
		"content":         post.Content,
		"created_at":      now,
	}

	query := `
		INSERT INTO posts (author_username, content, created_at)
		VALUES (@author_username, @content, @created_at)
		RETURNING id, author_username, content, created_at`

	var createdPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&createdPost.ID,
		&createdPost.AuthorUsername,
		&createdPost.Content,
		&createdPost.CreatedAt,
	)

	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_create", false)
		p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_create", true)
	p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
	return &createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, author_username, content, created_at
				FROM posts WHERE id = @id`
	row := p.db.QueryRow(ctx, query, args)
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.AuthorUsername,
		&post.Content,
		&post.CreatedAt,
	)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_get_by_id", false)
		p.metrics.RecordDatabaseQueryDuration("post_get_by_id", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	p.metrics.IncrementDatabaseQueries("post_get_by_id", true)
	p.metrics.RecordDatabaseQueryDuration("post_get_by_id", time.Since(start))
	return post, nil
}

func (p *PostRepository) GetByAuthor(ctx context.Context, authorUsername string) ([]*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{"author_username": authorUsername}
	query := `SELECT id, author_username, content, created_at
				FROM posts WHERE author_username = @author_username`

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_get_by_author", false)
		p.metrics.RecordDatabaseQueryDuration("post_get_by_author", time.Since(start))
		p.log.Error("Error getting posts by author", slog.String("author_username", authorUsername), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.AuthorUsername,
			&post.Content,
			&post.CreatedAt,
		)
		if err != nil {
			p.metrics.IncrementDatabaseQueries("post_get_by_author", false)
			p.metrics.RecordDatabaseQueryDuration("post_get_by_author", time.Since(start))
			p.log.Error("Error scanning post during GetByAuthor", slog.String("author_username", authorUsername), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.metrics.IncrementDatabaseQueries("post_get_by_author", false)
		p.metrics.RecordDatabaseQueryDuration("post_get_by_author", time.Since(start))
		p.log.Error("Error iterating rows during GetByAuthor", slog.String("author_username", authorUsername), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_get_by_author", true)
	p.metrics.RecordDatabaseQueryDuration("post_get_by_author", time.Since(start))
	return posts, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	start := time.Now()
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Content != nil {
		setClauses = append(setClauses, "content = @content")
		args["content"] = *update.Content
	}

	if len(setClauses) == 0 {
		return nil, custom_errors.ErrNoUpdateRows
	}

	// created_at is deliberately left out: edits never bump the post timestamp.
	query := "UPDATE posts SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING id, author_username, content, created_at"

	var updatedPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&updatedPost.ID,
		&updatedPost.AuthorUsername,
		&updatedPost.Content,
		&updatedPost.CreatedAt,
	)

	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_update", false)
		p.metrics.RecordDatabaseQueryDuration("post_update", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_update", true)
	p.metrics.RecordDatabaseQueryDuration("post_update", time.Since(start))
	return &updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`
	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_delete", false)
		p.metrics.RecordDatabaseQueryDuration("post_delete", time.Since(start))
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		p.metrics.IncrementDatabaseQueries("post_delete", false)
		p.metrics.RecordDatabaseQueryDuration("post_delete", time.Since(start))
		return custom_errors.ErrPostNotFound
	}
	p.metrics.IncrementDatabaseQueries("post_delete", true)
	p.metrics.RecordDatabaseQueryDuration("post_delete", time.Since(start))
	return nil
}

// List returns every post without any ordering guarantee. Consumers that
// need recency order sort on created_at themselves.
func (p *PostRepository) List(ctx context.Context) ([]*model.Post, error) {
	start := time.Now()
	query := `SELECT id, author_username, content, created_at FROM posts`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.AuthorUsername,
			&post.Content,
			&post.CreatedAt,
		)
		if err != nil {
			p.metrics.IncrementDatabaseQueries("post_list", false)
			p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_list", true)
	p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
	return posts, nil
}
