package http

import (
	"net/http"

	"blog-platform/pkg/auth"
	"blog-platform/pkg/response"
	"blog-platform/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeUseCase usecase.LikeUseCase
}

func NewLikeHandler(likeUseCase usecase.LikeUseCase) *LikeHandler {
	return &LikeHandler{likeUseCase: likeUseCase}
}

// ToggleLike godoc
// @Summary      Like or unlike a blog
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Blog ID"
// @Success      200  {object}  response.Envelope{data=usecase.LikeState}
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /blogs/{id}/like [post]
func (h *LikeHandler) ToggleLike(c *gin.Context, user auth.Identity) {
	state, err := h.likeUseCase.ToggleLike(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	message := "Blog unliked"
	if state.IsLiked {
		message = "Blog liked"
	}
	response.Success(c, http.StatusOK, message, state)
}

// LikeStatus godoc
// @Summary      Get like status
// @Tags         likes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Blog ID"
// @Success      200  {object}  response.Envelope{data=usecase.LikeState}
// @Failure      401  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /blogs/{id}/like-status [get]
func (h *LikeHandler) LikeStatus(c *gin.Context, user auth.Identity) {
	state, err := h.likeUseCase.GetLikeStatus(c.Request.Context(), user, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Like status fetched successfully", state)
}
