package usecase

import (
	"context"
	"errors"

	"blog-platform/pkg/apperror"
	"blog-platform/pkg/auth"
	"blog-platform/services/blog/internal/entity"
	"blog-platform/services/blog/internal/repo/persistent"
)

// Estimated views per like and per comment. Posts carry no view counter.
const (
	viewsPerLike    = 3
	viewsPerComment = 2
)

type AnalyticsUseCase interface {
	GetAuthorStats(ctx context.Context, viewer auth.Viewer, authorID string) (*entity.AuthorStats, error)
}

type analyticsUseCase struct {
	userRepo persistent.UserRepository
	postRepo persistent.PostRepository
}

func NewAnalyticsUseCase(userRepo persistent.UserRepository, postRepo persistent.PostRepository) AnalyticsUseCase {
	return &analyticsUseCase{userRepo: userRepo, postRepo: postRepo}
}

// GetAuthorStats totals an author's posts. Drafts count only when the
// author asks for their own numbers.
func (uc *analyticsUseCase) GetAuthorStats(ctx context.Context, viewer auth.Viewer, authorID string) (*entity.AuthorStats, error) {
	if !validID(authorID) {
		return nil, apperror.NotFound("User not found")
	}
	if _, err := uc.userRepo.GetByID(ctx, authorID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal("Failed to load user", err)
	}

	stats, err := uc.postRepo.AuthorStats(ctx, authorID, viewer.Is(authorID))
	if err != nil {
		return nil, apperror.Internal("Failed to compute analytics", err)
	}
	stats.TotalViews = stats.TotalLikes*viewsPerLike + stats.TotalComments*viewsPerComment
	return stats, nil
}
