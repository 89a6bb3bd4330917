package http

import (
	"net/http"

	"blog-platform/pkg/apperror"
	"blog-platform/pkg/auth"
	"blog-platform/pkg/response"
	"blog-platform/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{commentUseCase: commentUseCase}
}

type CommentRequest struct {
	Content string `json:"content"`
}

// ListComments godoc
// @Summary      List comments of a blog
// @Description  All comments, newest first
// @Tags         comments
// @Produce      json
// @Param        id   path  string  true  "Blog ID"
// @Success      200  {object}  response.Envelope{data=[]CommentResponse}
// @Failure      404  {object}  response.Envelope
// @Router       /blogs/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context, viewer auth.Viewer) {
	comments, err := h.commentUseCase.ListComments(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Comments fetched successfully", newCommentList(comments))
}

// AddComment godoc
// @Summary      Comment on a blog
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  string          true  "Blog ID"
// @Param        request  body  CommentRequest  true  "Comment body (1-500 characters)"
// @Success      201  {object}  response.Envelope{data=CommentResponse}
// @Failure      400  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /blogs/{id}/comments [post]
func (h *CommentHandler) AddComment(c *gin.Context, user auth.Identity) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Wrap(apperror.KindValidation, "Invalid request body", err))
		return
	}

	comment, err := h.commentUseCase.AddComment(c.Request.Context(), user, c.Param("id"), req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Comment added successfully", newCommentResponse(comment))
}

// UpdateComment godoc
// @Summary      Edit own comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        commentId  path  string          true  "Comment ID"
// @Param        request    body  CommentRequest  true  "New body"
// @Success      200  {object}  response.Envelope{data=CommentResponse}
// @Failure      400  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /blogs/comments/{commentId} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context, user auth.Identity) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Wrap(apperror.KindValidation, "Invalid request body", err))
		return
	}

	comment, err := h.commentUseCase.UpdateComment(c.Request.Context(), user, c.Param("commentId"), req.Content)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Comment updated successfully", newCommentResponse(comment))
}

// DeleteComment godoc
// @Summary      Delete own comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        commentId  path  string  true  "Comment ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /blogs/comments/{commentId} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context, user auth.Identity) {
	if err := h.commentUseCase.DeleteComment(c.Request.Context(), user, c.Param("commentId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Comment deleted successfully", nil)
}
