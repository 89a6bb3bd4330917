package usecase

import (
	"context"
	"io"
)

// MediaStorage is the external host for cover images.
type MediaStorage interface {
	UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
	// KeyFromURL reports the object key for URLs this storage issued.
	KeyFromURL(url string) (string, bool)
}

type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// Upload is a staged file from a multipart request. The caller owns Reader
// and releases it once the usecase returns.
type Upload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}
