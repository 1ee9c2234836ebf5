package feed_service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	"social-feed-service/internal/custom_errors"
	"social-feed-service/internal/logger"
	"social-feed-service/internal/model"
	post_repository "social-feed-service/internal/repository/post"
	"social-feed-service/internal/repository/postgres"
)

type FeedService struct {
	postRepo post_repository.Repository
	uow      postgres.UnitOfWork
	log      *logger.Logger
}

func NewFeedService(postRepo post_repository.Repository, uow postgres.UnitOfWork, log *logger.Logger) *FeedService {
	return &FeedService{
		postRepo: postRepo,
		uow:      uow,
		log:      log,
	}
}

// ListFeed returns every post, newest first. The store itself gives no
// ordering guarantee, so the sort happens here.
func (s *FeedService) ListFeed(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	sortByCreatedAtDesc(posts)
	return posts, nil
}

func (s *FeedService) ListByAuthor(ctx context.Context, authorUsername string) ([]*model.Post, error) {
	posts, err := s.postRepo.GetByAuthor(ctx, authorUsername)
	if err != nil {
		s.log.Error("Failed to list posts by author",
			slog.String("author_username", authorUsername),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	sortByCreatedAtDesc(posts)
	return posts, nil
}

func (s *FeedService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.Post, error) {
	newPost := &model.Post{
		AuthorUsername: post.AuthorUsername,
		Content:        post.Content,
	}

	createdPost, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.log.Error("Failed to create post",
			slog.String("author_username", post.AuthorUsername),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return createdPost, nil
}

// UpdatePost applies a content-only edit after the ownership gate. The read,
// the gate and the write run in one transaction so a concurrent delete or
// edit of the same post cannot slip between them.
func (s *FeedService) UpdatePost(ctx context.Context, callerUsername string, id int64, post *model.UpdatePostDTO) (result *model.Post, err error) {
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

	postRepo := tx.PostRepository()

	existingPost, err := postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for update", slog.String("error", err.Error()), slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}
	if existingPost.AuthorUsername != callerUsername {
		s.log.Debug("Caller is not author of post",
			slog.String("caller_username", callerUsername),
			slog.String("author_username", existingPost.AuthorUsername))
		return nil, custom_errors.ErrForbidden
	}

	updatedPost, err := postRepo.Update(ctx, id, post)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		if errors.Is(err, custom_errors.ErrNoUpdateRows) {
			s.log.Debug("No fields to update", slog.Int64("id", id))
			return nil, custom_errors.ErrNoUpdateRows
		}
		s.log.Error("Failed to update post", slog.String("error", err.Error()), slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}

	err = tx.Commit(ctx)
	if err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return updatedPost, nil
}

// DeletePost removes the post permanently after the ownership gate. Deletion
// is terminal: a second delete of the same id reports the post as missing.
func (s *FeedService) DeletePost(ctx context.Context, callerUsername string, id int64) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
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

	postRepo := tx.PostRepository()

	post, err := postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for delete", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}
	if post.AuthorUsername != callerUsername {
		s.log.Debug("Caller is not author of post",
			slog.String("caller_username", callerUsername),
			slog.String("author_username", post.AuthorUsername))
		return custom_errors.ErrForbidden
	}

	err = postRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to delete post", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	err = tx.Commit(ctx)
	if err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return nil
}

func sortByCreatedAtDesc(posts []*model.Post) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.Time.After(posts[j].CreatedAt.Time)
	})
}
