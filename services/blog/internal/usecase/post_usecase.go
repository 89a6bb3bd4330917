package usecase

import (
	"context"
	"errors"
	"fmt"

	"blog-platform/pkg/apperror"
	"blog-platform/pkg/auth"
	"blog-platform/pkg/logger"
	"blog-platform/services/blog/internal/entity"
	"blog-platform/services/blog/internal/repo/persistent"

	"github.com/google/uuid"
)

type CreatePostInput struct {
	Title   string
	Content string
	// Status defaults to published when empty.
	Status string
	Cover  *Upload
}

// UpdatePostInput carries optional replacements; nil or blank fields keep
// the stored value.
type UpdatePostInput struct {
	Title   *string
	Content *string
	Status  *string
	Cover   *Upload
}

type PostPage struct {
	Items []*entity.Post
	Page  int
	Limit int
	Total int64
}

type PostDetail struct {
	Post     *entity.Post
	Comments []*entity.Comment
	IsLiked  bool
}

type PostUseCase interface {
	ListPosts(ctx context.Context, params ListParams) (*PostPage, error)
	ListUserPosts(ctx context.Context, viewer auth.Viewer, authorID string, page, limit int) (*PostPage, error)
	ListMyPosts(ctx context.Context, user auth.Identity, status string, page, limit int) (*PostPage, error)
	GetPost(ctx context.Context, viewer auth.Viewer, postID string) (*PostDetail, error)
	CreatePost(ctx context.Context, user auth.Identity, in CreatePostInput) (*entity.Post, error)
	UpdatePost(ctx context.Context, user auth.Identity, postID string, in UpdatePostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, user auth.Identity, postID string) error
}

type postUseCase struct {
	postRepo      persistent.PostRepository
	commentRepo   persistent.CommentRepository
	media         MediaStorage
	events        eventSink
	maxUploadSize int64
	logger        *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	media MediaStorage,
	publisher EventPublisher,
	maxUploadSize int64,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:      postRepo,
		commentRepo:   commentRepo,
		media:         media,
		events:        eventSink{publisher: publisher, logger: logger},
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

// loadVisiblePost fetches a post the viewer may read. Drafts of other
// authors are reported as missing.
func loadVisiblePost(ctx context.Context, repo persistent.PostRepository, postID, viewerID string) (*entity.Post, error) {
	if !validID(postID) {
		return nil, apperror.NotFound("Blog not found")
	}

	post, err := repo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperror.NotFound("Blog not found")
		}
		return nil, apperror.Internal("Failed to load blog", err)
	}
	if !post.VisibleTo(viewerID) {
		return nil, apperror.NotFound("Blog not found")
	}
	return post, nil
}

func (uc *postUseCase) list(ctx context.Context, query entity.PostQuery) (*PostPage, error) {
	posts, total, err := uc.postRepo.List(ctx, query)
	if err != nil {
		return nil, apperror.Internal("Failed to fetch blogs", err)
	}
	return &PostPage{Items: posts, Page: query.Page, Limit: query.Limit, Total: total}, nil
}

func (uc *postUseCase) ListPosts(ctx context.Context, params ListParams) (*PostPage, error) {
	query, err := params.query()
	if err != nil {
		return nil, err
	}
	query.Status = entity.StatusPublished
	return uc.list(ctx, query)
}

// ListUserPosts lists an author's posts newest first. Authors also see
// their own drafts.
func (uc *postUseCase) ListUserPosts(ctx context.Context, viewer auth.Viewer, authorID string, page, limit int) (*PostPage, error) {
	page, limit, err := pageBounds(page, limit)
	if err != nil {
		return nil, err
	}
	if !validID(authorID) {
		return &PostPage{Items: []*entity.Post{}, Page: page, Limit: limit}, nil
	}

	query := entity.PostQuery{AuthorID: authorID, SortBy: entity.SortCreatedAt, Page: page, Limit: limit}
	if !viewer.Is(authorID) {
		query.Status = entity.StatusPublished
	}
	return uc.list(ctx, query)
}

func (uc *postUseCase) ListMyPosts(ctx context.Context, user auth.Identity, status string, page, limit int) (*PostPage, error) {
	page, limit, err := pageBounds(page, limit)
	if err != nil {
		return nil, err
	}
	postStatus, err := parseStatus(status, "")
	if err != nil {
		return nil, err
	}

	return uc.list(ctx, entity.PostQuery{
		AuthorID: user.ID,
		Status:   postStatus,
		SortBy:   entity.SortCreatedAt,
		Page:     page,
		Limit:    limit,
	})
}

func (uc *postUseCase) GetPost(ctx context.Context, viewer auth.Viewer, postID string) (*PostDetail, error) {
	post, err := loadVisiblePost(ctx, uc.postRepo, postID, viewer.UserID())
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, apperror.Internal("Failed to load comments", err)
	}

	detail := &PostDetail{Post: post, Comments: comments}
	if viewer.IsAuthenticated() {
		if detail.IsLiked, err = uc.postRepo.IsLiked(ctx, post.ID, viewer.UserID()); err != nil {
			return nil, apperror.Internal("Failed to load like status", err)
		}
	}
	return detail, nil
}

func (uc *postUseCase) CreatePost(ctx context.Context, user auth.Identity, in CreatePostInput) (*entity.Post, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	content, contentText, err := normalizeContent(in.Content)
	if err != nil {
		return nil, err
	}
	status, err := parseStatus(in.Status, entity.StatusPublished)
	if err != nil {
		return nil, err
	}
	if status == entity.StatusPublished && in.Cover == nil {
		return nil, apperror.Validation("Please upload a cover image")
	}

	post := &entity.Post{
		AuthorID:    user.ID,
		Title:       title,
		Content:     content,
		ContentText: contentText,
		Status:      status,
		Author:      authorOf(user),
	}

	if in.Cover != nil {
		if post.CoverImage, err = uc.uploadCover(ctx, user.ID, in.Cover); err != nil {
			return nil, err
		}
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		uc.releaseQuietly(ctx, post.CoverImage)
		return nil, apperror.Internal("Failed to create blog", err)
	}

	if post.IsPublished() {
		uc.events.postPublished(ctx, post.ID, post.AuthorID, post.Title)
	}
	return post, nil
}

func (uc *postUseCase) UpdatePost(ctx context.Context, user auth.Identity, postID string, in UpdatePostInput) (*entity.Post, error) {
	post, err := loadVisiblePost(ctx, uc.postRepo, postID, user.ID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != user.ID {
		return nil, apperror.Forbidden("Not authorized to update this blog")
	}

	updated := *post
	if provided(in.Title) {
		if updated.Title, err = normalizeTitle(*in.Title); err != nil {
			return nil, err
		}
	}
	if provided(in.Content) {
		if updated.Content, updated.ContentText, err = normalizeContent(*in.Content); err != nil {
			return nil, err
		}
	}
	if in.Status != nil {
		if updated.Status, err = parseStatus(*in.Status, post.Status); err != nil {
			return nil, err
		}
	}
	if updated.IsPublished() && updated.CoverImage == "" && in.Cover == nil {
		return nil, apperror.Validation("Please upload a cover image before publishing")
	}

	if in.Cover != nil {
		if updated.CoverImage, err = uc.uploadCover(ctx, user.ID, in.Cover); err != nil {
			return nil, err
		}
	}

	if err := uc.postRepo.Update(ctx, &updated); err != nil {
		if updated.CoverImage != post.CoverImage {
			uc.releaseQuietly(ctx, updated.CoverImage)
		}
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, apperror.NotFound("Blog not found")
		}
		return nil, apperror.Internal("Failed to update blog", err)
	}

	if !post.IsPublished() && updated.IsPublished() {
		uc.events.postPublished(ctx, updated.ID, updated.AuthorID, updated.Title)
	}

	if updated.CoverImage != post.CoverImage && post.CoverImage != "" {
		if err := uc.releaseCover(ctx, post.CoverImage); err != nil {
			uc.logger.Error("Blog %s updated but previous cover %s was not released: %v", post.ID, post.CoverImage, err)
			return nil, apperror.Internal("Blog updated but the previous cover image could not be removed", err)
		}
	}
	return &updated, nil
}

// DeletePost releases the cover image first and only then removes the post
// with its likes and comments. If the media host fails nothing is deleted
// and the call can be repeated.
func (uc *postUseCase) DeletePost(ctx context.Context, user auth.Identity, postID string) error {
	post, err := loadVisiblePost(ctx, uc.postRepo, postID, user.ID)
	if err != nil {
		return err
	}
	if post.AuthorID != user.ID {
		return apperror.Forbidden("Not authorized to delete this blog")
	}

	if err := uc.releaseCover(ctx, post.CoverImage); err != nil {
		return apperror.Internal("Failed to delete cover image", err)
	}

	if err := uc.postRepo.DeleteCascade(ctx, post.ID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return apperror.NotFound("Blog not found")
		}
		return apperror.Internal("Failed to delete blog", err)
	}

	uc.logger.Info("Deleted blog %s", post.ID)
	return nil
}

func (uc *postUseCase) uploadCover(ctx context.Context, userID string, upload *Upload) (string, error) {
	ext, err := checkCover(upload, uc.maxUploadSize)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("covers/%s/%s%s", userID, uuid.New().String(), ext)
	url, err := uc.media.UploadFile(ctx, key, upload.Reader, upload.ContentType)
	if err != nil {
		return "", apperror.Internal("Failed to upload cover image", err)
	}
	return url, nil
}

// releaseCover deletes a cover from the media host. URLs the host did not
// issue (seeded or external images) are left alone.
func (uc *postUseCase) releaseCover(ctx context.Context, url string) error {
	if url == "" {
		return nil
	}
	key, ok := uc.media.KeyFromURL(url)
	if !ok {
		uc.logger.Warn("Cover %s is not managed by the media host, skipping delete", url)
		return nil
	}
	return uc.media.DeleteFile(ctx, key)
}

func (uc *postUseCase) releaseQuietly(ctx context.Context, url string) {
	if err := uc.releaseCover(ctx, url); err != nil {
		uc.logger.Error("Failed to release orphaned cover %s: %v", url, err)
	}
}
