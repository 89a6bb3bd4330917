package http

import (
	"context"

	"blog-platform/pkg/auth"
	"blog-platform/services/blog/internal/entity"
	"blog-platform/services/blog/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, string, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) UpdateProfile(ctx context.Context, userID string, in usecase.ProfileInput) (*entity.User, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) ResolveIdentity(ctx context.Context, userID string) (*auth.Identity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Identity), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) ListPosts(ctx context.Context, params usecase.ListParams) (*usecase.PostPage, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PostPage), args.Error(1)
}

func (m *MockPostUseCase) ListUserPosts(ctx context.Context, viewer auth.Viewer, authorID string, page, limit int) (*usecase.PostPage, error) {
	args := m.Called(ctx, viewer, authorID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PostPage), args.Error(1)
}

func (m *MockPostUseCase) ListMyPosts(ctx context.Context, user auth.Identity, status string, page, limit int) (*usecase.PostPage, error) {
	args := m.Called(ctx, user, status, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PostPage), args.Error(1)
}

func (m *MockPostUseCase) GetPost(ctx context.Context, viewer auth.Viewer, postID string) (*usecase.PostDetail, error) {
	args := m.Called(ctx, viewer, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.PostDetail), args.Error(1)
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, user auth.Identity, in usecase.CreatePostInput) (*entity.Post, error) {
	args := m.Called(ctx, user, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UpdatePost(ctx context.Context, user auth.Identity, postID string, in usecase.UpdatePostInput) (*entity.Post, error) {
	args := m.Called(ctx, user, postID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(ctx context.Context, user auth.Identity, postID string) error {
	args := m.Called(ctx, user, postID)
	return args.Error(0)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

type MockLikeUseCase struct {
	mock.Mock
}

func (m *MockLikeUseCase) ToggleLike(ctx context.Context, user auth.Identity, postID string) (*usecase.LikeState, error) {
	args := m.Called(ctx, user, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LikeState), args.Error(1)
}

func (m *MockLikeUseCase) GetLikeStatus(ctx context.Context, user auth.Identity, postID string) (*usecase.LikeState, error) {
	args := m.Called(ctx, user, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.LikeState), args.Error(1)
}

var _ usecase.LikeUseCase = (*MockLikeUseCase)(nil)

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) ListComments(ctx context.Context, viewer auth.Viewer, postID string) ([]*entity.Comment, error) {
	args := m.Called(ctx, viewer, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) AddComment(ctx context.Context, user auth.Identity, postID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, user, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) UpdateComment(ctx context.Context, user auth.Identity, commentID, content string) (*entity.Comment, error) {
	args := m.Called(ctx, user, commentID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(ctx context.Context, user auth.Identity, commentID string) error {
	args := m.Called(ctx, user, commentID)
	return args.Error(0)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

type MockAnalyticsUseCase struct {
	mock.Mock
}

func (m *MockAnalyticsUseCase) GetAuthorStats(ctx context.Context, viewer auth.Viewer, authorID string) (*entity.AuthorStats, error) {
	args := m.Called(ctx, viewer, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuthorStats), args.Error(1)
}

var _ usecase.AnalyticsUseCase = (*MockAnalyticsUseCase)(nil)
