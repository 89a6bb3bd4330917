package usecase

import (
	"context"
	"errors"

	"blog-platform/pkg/apperror"
	"blog-platform/pkg/auth"
	"blog-platform/pkg/logger"
	"blog-platform/pkg/queue"
	"blog-platform/services/blog/internal/entity"
	"blog-platform/services/blog/internal/repo/persistent"
)

type CommentUseCase interface {
	ListComments(ctx context.Context, viewer auth.Viewer, postID string) ([]*entity.Comment, error)
	AddComment(ctx context.Context, user auth.Identity, postID, content string) (*entity.Comment, error)
	UpdateComment(ctx context.Context, user auth.Identity, commentID, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, user auth.Identity, commentID string) error
}

type commentUseCase struct {
	postRepo    persistent.PostRepository
	commentRepo persistent.CommentRepository
	events      eventSink
	logger      *logger.Logger
}

func NewCommentUseCase(
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		events:      eventSink{publisher: publisher, logger: logger},
		logger:      logger,
	}
}

func (uc *commentUseCase) ListComments(ctx context.Context, viewer auth.Viewer, postID string) ([]*entity.Comment, error) {
	post, err := loadVisiblePost(ctx, uc.postRepo, postID, viewer.UserID())
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch comments", err)
	}
	return comments, nil
}

// AddComment stores the comment and bumps the post's comment count in one
// store transaction.
func (uc *commentUseCase) AddComment(ctx context.Context, user auth.Identity, postID, content string) (*entity.Comment, error) {
	body, err := normalizeComment(content)
	if err != nil {
		return nil, err
	}
	post, err := loadVisiblePost(ctx, uc.postRepo, postID, user.ID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		PostID:   post.ID,
		AuthorID: user.ID,
		Content:  body,
		Author:   &entity.Author{ID: user.ID, Name: user.Name, Avatar: user.Avatar},
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperror.NotFound("Blog not found")
		}
		return nil, apperror.Internal("Failed to add comment", err)
	}

	uc.events.publish(ctx, queue.RoutingCommentCreated, CommentCreatedEvent{
		CommentID:    comment.ID,
		PostID:       post.ID,
		PostAuthorID: post.AuthorID,
		AuthorID:     user.ID,
	})
	return comment, nil
}

func (uc *commentUseCase) loadOwnComment(ctx context.Context, user auth.Identity, commentID, action string) (*entity.Comment, error) {
	if !validID(commentID) {
		return nil, apperror.NotFound("Comment not found")
	}

	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperror.NotFound("Comment not found")
		}
		return nil, apperror.Internal("Failed to load comment", err)
	}
	if comment.AuthorID != user.ID {
		return nil, apperror.Forbidden("Not authorized to " + action + " this comment")
	}
	return comment, nil
}

func (uc *commentUseCase) UpdateComment(ctx context.Context, user auth.Identity, commentID, content string) (*entity.Comment, error) {
	comment, err := uc.loadOwnComment(ctx, user, commentID, "update")
	if err != nil {
		return nil, err
	}
	if comment.Content, err = normalizeComment(content); err != nil {
		return nil, err
	}

	if err := uc.commentRepo.Update(ctx, comment); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperror.NotFound("Comment not found")
		}
		return nil, apperror.Internal("Failed to update comment", err)
	}
	return comment, nil
}

// DeleteComment removes the comment and decrements the post's comment
// count in the same store transaction.
func (uc *commentUseCase) DeleteComment(ctx context.Context, user auth.Identity, commentID string) error {
	comment, err := uc.loadOwnComment(ctx, user, commentID, "delete")
	if err != nil {
		return err
	}

	if err := uc.commentRepo.Delete(ctx, comment); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return apperror.NotFound("Comment not found")
		}
		return apperror.Internal("Failed to delete comment", err)
	}
	return nil
}
