package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"blog-platform/pkg/apperror"
	"blog-platform/pkg/auth"
	"blog-platform/pkg/jwt"
	"blog-platform/pkg/logger"
	"blog-platform/services/blog/internal/entity"
	"blog-platform/services/blog/internal/repo/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	failed bool
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, _ interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failed {
		return errors.New("broker down")
	}
	p.keys = append(p.keys, routingKey)
	return nil
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}

type fixture struct {
	store     *memory.Store
	media     *memory.MediaStorage
	events    *recordingPublisher
	jwt       *jwt.Service
	auth      AuthUseCase
	posts     PostUseCase
	likes     LikeUseCase
	comments  CommentUseCase
	analytics AnalyticsUseCase
}

const testMaxUpload = 5 * 1024 * 1024

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.New()
	store := memory.NewStore()
	media := memory.NewMediaStorage()
	events := &recordingPublisher{}
	jwtService := jwt.NewService("test-secret-key")

	return &fixture{
		store:     store,
		media:     media,
		events:    events,
		jwt:       jwtService,
		auth:      NewAuthUseCase(store.Users(), jwtService, log),
		posts:     NewPostUseCase(store.Posts(), store.Comments(), media, events, testMaxUpload, log),
		likes:     NewLikeUseCase(store.Posts(), events, log),
		comments:  NewCommentUseCase(store.Posts(), store.Comments(), events, log),
		analytics: NewAnalyticsUseCase(store.Users(), store.Posts()),
	}
}

// user stores an account directly, skipping password hashing.
func (f *fixture) user(t *testing.T, name string) auth.Identity {
	t.Helper()
	u := &entity.User{Name: name, Email: strings.ToLower(name) + "@example.com", Password: "unused"}
	require.NoError(t, f.store.Users().Create(context.Background(), u))
	return ToIdentity(u)
}

func cover() *Upload {
	return &Upload{
		Reader:      strings.NewReader("fake-png-bytes"),
		Filename:    "cover.png",
		ContentType: "image/png",
		Size:        14,
	}
}

const longContent = "<p>This is a long enough body for a blog post.</p>"

func (f *fixture) publish(t *testing.T, author auth.Identity, title string) *entity.Post {
	t.Helper()
	post, err := f.posts.CreatePost(context.Background(), author, CreatePostInput{
		Title:   title,
		Content: longContent,
		Cover:   cover(),
	})
	require.NoError(t, err)
	return post
}

func (f *fixture) draft(t *testing.T, author auth.Identity, title string) *entity.Post {
	t.Helper()
	post, err := f.posts.CreatePost(context.Background(), author, CreatePostInput{
		Title:   title,
		Content: longContent,
		Status:  "draft",
	})
	require.NoError(t, err)
	return post
}

func (f *fixture) reload(t *testing.T, postID string) *entity.Post {
	t.Helper()
	post, err := f.store.Posts().GetByID(context.Background(), postID)
	require.NoError(t, err)
	return post
}

func assertKind(t *testing.T, err error, kind apperror.Kind) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, kind, apperror.KindOf(err), err.Error())
}
