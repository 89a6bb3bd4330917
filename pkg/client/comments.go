package client

import (
	"context"
	"net/http"
	"time"
)

type commentBody struct {
	Content string `json:"content"`
}

func (c *Client) ListComments(ctx context.Context, postID string) ([]Comment, error) {
	var comments []Comment
	if err := c.doJSON(ctx, http.MethodGet, "/blogs/"+escape(postID)+"/comments", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) AddComment(ctx context.Context, postID, content string) (*Comment, error) {
	var comment Comment
	path := "/blogs/" + escape(postID) + "/comments"
	if err := c.doJSON(ctx, http.MethodPost, path, commentBody{Content: content}, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) UpdateComment(ctx context.Context, commentID, content string) (*Comment, error) {
	var comment Comment
	path := "/blogs/comments/" + escape(commentID)
	if err := c.doJSON(ctx, http.MethodPut, path, commentBody{Content: content}, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/blogs/comments/"+escape(commentID), nil, nil)
}

// EditComment edits a comment inside an already loaded list. The edit is
// applied to a copy first; on success the server's version replaces it, on
// failure the original list is returned unchanged together with the error.
// onApply, if set, sees the optimistic list before the request is sent.
func (c *Client) EditComment(ctx context.Context, comments []Comment, commentID, content string, onApply func([]Comment)) ([]Comment, error) {
	index := -1
	for i := range comments {
		if comments[i].ID == commentID {
			index = i
			break
		}
	}
	if index < 0 {
		return comments, &APIError{Status: http.StatusNotFound, Message: "Comment not found"}
	}

	optimistic := make([]Comment, len(comments))
	copy(optimistic, comments)
	optimistic[index].Content = content
	optimistic[index].UpdatedAt = time.Now()
	if onApply != nil {
		onApply(optimistic)
	}

	updated, err := c.UpdateComment(ctx, commentID, content)
	if err != nil {
		return comments, err
	}
	optimistic[index] = *updated
	return optimistic, nil
}
