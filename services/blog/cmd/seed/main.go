package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"blog-platform/pkg/apperror"
	"blog-platform/pkg/auth"
	"blog-platform/pkg/config"
	"blog-platform/pkg/database"
	"blog-platform/pkg/jwt"
	"blog-platform/pkg/logger"
	"blog-platform/pkg/s3"
	"blog-platform/services/blog/internal/repo/persistent"
	"blog-platform/services/blog/internal/usecase"
)

type seedUser struct {
	name     string
	email    string
	password string
	bio      string
}

var testUsers = []seedUser{
	{"Alice Writer", "alice@test.com", "password123", "Writes about distributed systems."},
	{"Bob Reader", "bob@test.com", "password123", "Mostly here for the comments."},
	{"Charlie Cook", "charlie@test.com", "password123", "Recipes and kitchen experiments."},
}

type seeder struct {
	auth       usecase.AuthUseCase
	posts      usecase.PostUseCase
	likes      usecase.LikeUseCase
	comments   usecase.CommentUseCase
	httpClient *http.Client
	log        *logger.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	commentRepo := persistent.NewCommentRepository(db)

	s := &seeder{
		auth:       usecase.NewAuthUseCase(userRepo, jwt.NewService(cfg.JWTSecret), log),
		posts:      usecase.NewPostUseCase(postRepo, commentRepo, s3Client, nil, cfg.MaxUploadSize, log),
		likes:      usecase.NewLikeUseCase(postRepo, nil, log),
		comments:   usecase.NewCommentUseCase(postRepo, commentRepo, nil, log),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}

	if err := s.run(context.Background()); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func (s *seeder) run(ctx context.Context) error {
	users := make([]auth.Identity, 0, len(testUsers))
	for _, u := range testUsers {
		identity, err := s.ensureUser(ctx, u)
		if err != nil {
			return err
		}
		users = append(users, identity)
	}

	var published []string
	for i, author := range users {
		for j := 0; j < 2; j++ {
			id, err := s.createPost(ctx, author, i*2+j)
			if err != nil {
				s.log.Error("Failed to create post %d for %s: %v", j+1, author.Name, err)
				continue
			}
			published = append(published, id)
			time.Sleep(200 * time.Millisecond)
		}

		if _, err := s.posts.CreatePost(ctx, author, usecase.CreatePostInput{
			Title:   fmt.Sprintf("Unfinished thoughts by %s", author.Name),
			Content: "<p>This draft is only visible to its author until it is published.</p>",
			Status:  "draft",
		}); err != nil {
			s.log.Error("Failed to create draft for %s: %v", author.Name, err)
		}
	}

	for i, postID := range published {
		reader := users[(i+1)%len(users)]
		if _, err := s.likes.ToggleLike(ctx, reader, postID); err != nil {
			s.log.Error("Failed to like post %s: %v", postID, err)
		}
		if _, err := s.comments.AddComment(ctx, reader, postID, fmt.Sprintf("Thanks for post #%d, %s here!", i+1, reader.Name)); err != nil {
			s.log.Error("Failed to comment on post %s: %v", postID, err)
		}
	}
	return nil
}

// ensureUser registers the account, or logs in when a previous run already
// created it.
func (s *seeder) ensureUser(ctx context.Context, u seedUser) (auth.Identity, error) {
	user, _, err := s.auth.Register(ctx, usecase.RegisterInput{Name: u.name, Email: u.email, Password: u.password})
	if apperror.Is(err, apperror.KindConflict) {
		s.log.Info("User %s already exists, skipping", u.email)
		user, _, err = s.auth.Login(ctx, u.email, u.password)
	}
	if err != nil {
		return auth.Identity{}, fmt.Errorf("seed user %s: %w", u.email, err)
	}

	bio := u.bio
	if user, err = s.auth.UpdateProfile(ctx, user.ID, usecase.ProfileInput{Bio: &bio}); err != nil {
		return auth.Identity{}, fmt.Errorf("seed profile %s: %w", u.email, err)
	}

	s.log.Info("Seeded user: %s (%s)", user.Name, user.Email)
	return usecase.ToIdentity(user), nil
}

func (s *seeder) createPost(ctx context.Context, author auth.Identity, index int) (string, error) {
	cover, err := s.fetchCover(author.Name, index)
	if err != nil {
		return "", err
	}

	post, err := s.posts.CreatePost(ctx, author, usecase.CreatePostInput{
		Title: fmt.Sprintf("Field notes #%d by %s", index+1, author.Name),
		Content: fmt.Sprintf(
			"<h2>Entry %d</h2><p>A seeded post with a cover image from CATAAS. "+
				"It exists so the feed, search and analytics have something to show.</p>", index+1),
		Cover: cover,
	})
	if err != nil {
		return "", err
	}

	s.log.Info("Created post: %s by %s", post.Title, author.Name)
	return post.ID, nil
}

func (s *seeder) fetchCover(name string, index int) (*usecase.Upload, error) {
	url := "https://cataas.com/cat"
	if index%2 == 0 {
		url += fmt.Sprintf("/says/Hello from %s", name)
	}

	s.log.Info("Fetching cover image from %s", url)
	resp, err := s.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cover image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cataas API returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("received empty image data")
	}

	return &usecase.Upload{
		Reader:      bytes.NewReader(data),
		Filename:    fmt.Sprintf("seed_%d", index),
		ContentType: http.DetectContentType(data),
		Size:        int64(len(data)),
	}, nil
}
