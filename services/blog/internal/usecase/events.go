package usecase

import (
	"context"
	"time"

	"blog-platform/pkg/logger"
	"blog-platform/pkg/queue"
)

type PostPublishedEvent struct {
	PostID      string    `json:"post_id"`
	AuthorID    string    `json:"author_id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
}

type PostLikedEvent struct {
	PostID     string `json:"post_id"`
	AuthorID   string `json:"author_id"`
	UserID     string `json:"user_id"`
	LikesCount int    `json:"likes_count"`
}

type CommentCreatedEvent struct {
	CommentID    string `json:"comment_id"`
	PostID       string `json:"post_id"`
	PostAuthorID string `json:"post_author_id"`
	AuthorID     string `json:"author_id"`
}

// eventSink publishes after a successful commit. Failures are logged and
// never change the outcome of the request.
type eventSink struct {
	publisher EventPublisher
	logger    *logger.Logger
}

func (s eventSink) publish(ctx context.Context, routingKey string, payload interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, routingKey, payload); err != nil {
		s.logger.Warn("Failed to publish %s event: %v", routingKey, err)
	}
}

func (s eventSink) postPublished(ctx context.Context, postID, authorID, title string) {
	s.publish(ctx, queue.RoutingPostPublished, PostPublishedEvent{
		PostID:      postID,
		AuthorID:    authorID,
		Title:       title,
		PublishedAt: time.Now(),
	})
}
