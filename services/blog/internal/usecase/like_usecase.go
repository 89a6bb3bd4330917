package usecase

import (
	"context"
	"errors"

	"blog-platform/pkg/apperror"
	"blog-platform/pkg/auth"
	"blog-platform/pkg/logger"
	"blog-platform/pkg/queue"
	"blog-platform/services/blog/internal/repo/persistent"
)

type LikeState struct {
	IsLiked    bool `json:"isLiked"`
	LikesCount int  `json:"likesCount"`
}

type LikeUseCase interface {
	ToggleLike(ctx context.Context, user auth.Identity, postID string) (*LikeState, error)
	GetLikeStatus(ctx context.Context, user auth.Identity, postID string) (*LikeState, error)
}

type likeUseCase struct {
	postRepo persistent.PostRepository
	events   eventSink
	logger   *logger.Logger
}

func NewLikeUseCase(postRepo persistent.PostRepository, publisher EventPublisher, logger *logger.Logger) LikeUseCase {
	return &likeUseCase{
		postRepo: postRepo,
		events:   eventSink{publisher: publisher, logger: logger},
		logger:   logger,
	}
}

// ToggleLike flips the caller's membership in the post's like set. The
// count is recomputed from the set inside the same store transaction.
func (uc *likeUseCase) ToggleLike(ctx context.Context, user auth.Identity, postID string) (*LikeState, error) {
	post, err := loadVisiblePost(ctx, uc.postRepo, postID, user.ID)
	if err != nil {
		return nil, err
	}

	liked, count, err := uc.postRepo.ToggleLike(ctx, post.ID, user.ID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperror.NotFound("Blog not found")
		}
		return nil, apperror.Internal("Failed to toggle like", err)
	}

	if liked && post.AuthorID != user.ID {
		uc.events.publish(ctx, queue.RoutingPostLiked, PostLikedEvent{
			PostID:     post.ID,
			AuthorID:   post.AuthorID,
			UserID:     user.ID,
			LikesCount: count,
		})
	}
	return &LikeState{IsLiked: liked, LikesCount: count}, nil
}

func (uc *likeUseCase) GetLikeStatus(ctx context.Context, user auth.Identity, postID string) (*LikeState, error) {
	post, err := loadVisiblePost(ctx, uc.postRepo, postID, user.ID)
	if err != nil {
		return nil, err
	}

	liked, err := uc.postRepo.IsLiked(ctx, post.ID, user.ID)
	if err != nil {
		return nil, apperror.Internal("Failed to load like status", err)
	}
	return &LikeState{IsLiked: liked, LikesCount: post.LikesCount}, nil
}
