package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

func escape(id string) string {
	return url.PathEscape(id)
}

func pageQuery(values url.Values, page, limit int) {
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
}

func withQuery(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

func (c *Client) ListPosts(ctx context.Context, opts ListOptions) (*PostList, error) {
	values := url.Values{}
	pageQuery(values, opts.Page, opts.Limit)
	if opts.Search != "" {
		values.Set("search", opts.Search)
	}
	if opts.SortBy != "" {
		values.Set("sortBy", opts.SortBy)
	}
	if opts.Order != "" {
		values.Set("order", opts.Order)
	}

	var list PostList
	if err := c.doJSON(ctx, http.MethodGet, withQuery("/blogs", values), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetPost(ctx context.Context, id string) (*PostDetail, error) {
	var detail PostDetail
	if err := c.doJSON(ctx, http.MethodGet, "/blogs/"+escape(id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *Client) ListUserPosts(ctx context.Context, userID string, page, limit int) (*PostList, error) {
	values := url.Values{}
	pageQuery(values, page, limit)

	var list PostList
	if err := c.doJSON(ctx, http.MethodGet, withQuery("/blogs/user/"+escape(userID), values), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// MyPosts lists the signed-in user's posts. An empty status returns both
// drafts and published posts.
func (c *Client) MyPosts(ctx context.Context, status string, page, limit int) (*PostList, error) {
	values := url.Values{}
	pageQuery(values, page, limit)
	if status != "" {
		values.Set("status", status)
	}

	var list PostList
	if err := c.doJSON(ctx, http.MethodGet, withQuery("/blogs/my-blogs", values), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// PostCounts are the per-status totals shown on the dashboard tabs.
type PostCounts struct {
	Drafts    int64
	Published int64
}

func (c *Client) CountMyPosts(ctx context.Context) (*PostCounts, error) {
	var counts PostCounts
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := c.MyPosts(ctx, StatusDraft, 1, 1)
		if err != nil {
			return err
		}
		counts.Drafts = list.Pagination.Total
		return nil
	})
	g.Go(func() error {
		list, err := c.MyPosts(ctx, StatusPublished, 1, 1)
		if err != nil {
			return err
		}
		counts.Published = list.Pagination.Total
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &counts, nil
}

func (c *Client) CreatePost(ctx context.Context, input PostInput) (*Post, error) {
	fields := map[string]string{"title": input.Title, "content": input.Content}
	if input.Status != "" {
		fields["status"] = input.Status
	}
	return c.sendPost(ctx, http.MethodPost, "/blogs", fields, input.Cover)
}

// SaveDraft creates the post as a draft; the cover may be omitted.
func (c *Client) SaveDraft(ctx context.Context, input PostInput) (*Post, error) {
	input.Status = StatusDraft
	return c.CreatePost(ctx, input)
}

func (c *Client) UpdatePost(ctx context.Context, id string, update PostUpdate) (*Post, error) {
	fields := map[string]string{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Content != nil {
		fields["content"] = *update.Content
	}
	if update.Status != nil {
		fields["status"] = *update.Status
	}
	return c.sendPost(ctx, http.MethodPut, "/blogs/"+escape(id), fields, update.Cover)
}

// Publish makes a post public. cover may be nil if the post already has one.
func (c *Client) Publish(ctx context.Context, id string, cover *Cover) (*Post, error) {
	status := StatusPublished
	return c.UpdatePost(ctx, id, PostUpdate{Status: &status, Cover: cover})
}

func (c *Client) Unpublish(ctx context.Context, id string) (*Post, error) {
	status := StatusDraft
	return c.UpdatePost(ctx, id, PostUpdate{Status: &status})
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/blogs/"+escape(id), nil, nil)
}

func (c *Client) ToggleLike(ctx context.Context, postID string) (*LikeState, error) {
	var state LikeState
	if err := c.doJSON(ctx, http.MethodPost, "/blogs/"+escape(postID)+"/like", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *Client) LikeStatus(ctx context.Context, postID string) (*LikeState, error) {
	var state LikeState
	if err := c.doJSON(ctx, http.MethodGet, "/blogs/"+escape(postID)+"/like-status", nil, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *Client) sendPost(ctx context.Context, method, path string, fields map[string]string, cover *Cover) (*Post, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to write field %s: %w", key, err)
		}
	}

	if cover != nil && cover.Reader != nil {
		part, err := writer.CreateFormFile("coverImage", filepath.Base(cover.Name))
		if err != nil {
			return nil, fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := io.Copy(part, cover.Reader); err != nil {
			return nil, fmt.Errorf("failed to copy cover: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	var post Post
	if err := c.do(ctx, method, path, body, writer.FormDataContentType(), &post); err != nil {
		return nil, err
	}
	return &post, nil
}
