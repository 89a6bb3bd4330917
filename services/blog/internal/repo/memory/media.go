package memory

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

const mediaBaseURL = "https://media.test/"

// MediaStorage keeps uploaded objects in memory. Fail* fields inject
// failures for the next calls.
type MediaStorage struct {
	mu         sync.Mutex
	objects    map[string][]byte
	FailUpload bool
	FailDelete bool
}

func NewMediaStorage() *MediaStorage {
	return &MediaStorage{objects: make(map[string][]byte)}
}

func (m *MediaStorage) UploadFile(_ context.Context, key string, file io.Reader, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailUpload {
		return "", errors.New("media host unavailable")
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	m.objects[key] = data
	return mediaBaseURL + key, nil
}

func (m *MediaStorage) DeleteFile(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailDelete {
		return errors.New("media host unavailable")
	}
	delete(m.objects, key)
	return nil
}

func (m *MediaStorage) KeyFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, mediaBaseURL) || url == mediaBaseURL {
		return "", false
	}
	return strings.TrimPrefix(url, mediaBaseURL), true
}

func (m *MediaStorage) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}

func (m *MediaStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
