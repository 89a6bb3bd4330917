package usecase

import (
	"fmt"
	"html"
	"math"
	"strings"
	"unicode/utf8"

	"blog-platform/pkg/apperror"
	"blog-platform/services/blog/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

const (
	titleMinLen    = 5
	titleMaxLen    = 200
	contentMinLen  = 20
	commentMaxLen  = 500
	nameMinLen     = 2
	nameMaxLen     = 50
	bioMaxLen      = 200
	passwordMinLen = 6

	defaultPageSize = 10
	maxPageSize     = 100
	// maxPage keeps (page-1)*limit within int for every allowed limit.
	maxPage = math.MaxInt32
)

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
	validate     = validator.New()
)

var coverExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// plainText strips all markup and collapses whitespace. Tag boundaries
// become spaces so adjacent blocks do not fuse into one word.
func plainText(s string) string {
	stripped := strictPolicy.Sanitize(strings.ReplaceAll(s, "<", " <"))
	return strings.Join(strings.Fields(html.UnescapeString(stripped)), " ")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func normalizeTitle(raw string) (string, error) {
	title := plainText(raw)
	switch n := runeLen(title); {
	case n == 0:
		return "", apperror.Validation("Please provide a blog title")
	case n < titleMinLen:
		return "", apperror.Validation(fmt.Sprintf("Title must be at least %d characters", titleMinLen))
	case n > titleMaxLen:
		return "", apperror.Validation(fmt.Sprintf("Title cannot exceed %d characters", titleMaxLen))
	}
	return title, nil
}

// normalizeContent returns the sanitised HTML body and its plain text.
func normalizeContent(raw string) (string, string, error) {
	body := strings.TrimSpace(ugcPolicy.Sanitize(raw))
	text := plainText(body)
	switch n := runeLen(text); {
	case n == 0:
		return "", "", apperror.Validation("Please provide blog content")
	case n < contentMinLen:
		return "", "", apperror.Validation(fmt.Sprintf("Content must be at least %d characters", contentMinLen))
	}
	return body, text, nil
}

func normalizeComment(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	switch n := runeLen(content); {
	case n == 0:
		return "", apperror.Validation("Comment content is required")
	case n > commentMaxLen:
		return "", apperror.Validation(fmt.Sprintf("Comment cannot exceed %d characters", commentMaxLen))
	}
	return content, nil
}

func parseStatus(raw string, fallback entity.PostStatus) (entity.PostStatus, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	status := entity.PostStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", apperror.Validation("Status must be either draft or published")
	}
	return status, nil
}

func checkCover(upload *Upload, maxSize int64) (string, error) {
	ext, ok := coverExtensions[upload.ContentType]
	if !ok {
		return "", apperror.Validation("Only image files (jpeg, jpg, png, gif, webp) are allowed")
	}
	if upload.Size <= 0 {
		return "", apperror.Validation("Cover image is empty")
	}
	if maxSize > 0 && upload.Size > maxSize {
		return "", apperror.Validation(fmt.Sprintf("Cover image must be smaller than %d MB", maxSize/(1024*1024)))
	}
	return ext, nil
}

func normalizeName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	switch n := runeLen(name); {
	case n == 0:
		return "", apperror.Validation("Please provide a name")
	case n < nameMinLen:
		return "", apperror.Validation(fmt.Sprintf("Name must be at least %d characters", nameMinLen))
	case n > nameMaxLen:
		return "", apperror.Validation(fmt.Sprintf("Name cannot exceed %d characters", nameMaxLen))
	}
	return name, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if err := validate.Var(email, "required,email"); err != nil {
		return "", apperror.Validation("Please provide a valid email")
	}
	return email, nil
}

func checkPassword(password string) error {
	if runeLen(password) < passwordMinLen {
		return apperror.Validation(fmt.Sprintf("Password must be at least %d characters", passwordMinLen))
	}
	return nil
}

func normalizeBio(raw string) (string, error) {
	bio := strings.TrimSpace(raw)
	if runeLen(bio) > bioMaxLen {
		return "", apperror.Validation(fmt.Sprintf("Bio cannot exceed %d characters", bioMaxLen))
	}
	return bio, nil
}

func normalizeAvatar(raw string) (string, error) {
	avatar := strings.TrimSpace(raw)
	if err := validate.Var(avatar, "omitempty,url"); err != nil {
		return "", apperror.Validation("Avatar must be a valid URL")
	}
	return avatar, nil
}

// provided reports whether an optional text field carries a replacement.
func provided(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// validID rejects identifiers that cannot name a stored record.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

type ListParams struct {
	Page   int
	Limit  int
	Search string
	SortBy string
	Order  string
}

func pageBounds(page, limit int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return 0, 0, apperror.Validation("Page must be a positive number")
	}
	if page > maxPage {
		return 0, 0, apperror.Validation("Page is out of range")
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	if limit < 1 {
		return 0, 0, apperror.Validation("Limit must be a positive number")
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit, nil
}

func (p ListParams) query() (entity.PostQuery, error) {
	page, limit, err := pageBounds(p.Page, p.Limit)
	if err != nil {
		return entity.PostQuery{}, err
	}

	q := entity.PostQuery{
		Page:   page,
		Limit:  limit,
		Search: strings.TrimSpace(p.Search),
		SortBy: entity.SortField(p.SortBy),
	}
	if q.SortBy == "" && q.Search == "" {
		q.SortBy = entity.SortCreatedAt
	}
	if q.SortBy != "" && !q.SortBy.Valid() {
		return entity.PostQuery{}, apperror.Validation("sortBy must be one of createdAt, updatedAt, title, likesCount, commentsCount")
	}

	switch strings.ToLower(p.Order) {
	case "", "desc":
	case "asc":
		q.Ascending = true
	default:
		return entity.PostQuery{}, apperror.Validation("order must be asc or desc")
	}
	return q, nil
}
