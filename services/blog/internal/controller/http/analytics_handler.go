package http

import (
	"net/http"

	"blog-platform/pkg/auth"
	"blog-platform/pkg/response"
	"blog-platform/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUseCase usecase.AnalyticsUseCase
}

func NewAnalyticsHandler(analyticsUseCase usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUseCase: analyticsUseCase}
}

// AuthorStats godoc
// @Summary      Author totals
// @Description  Post, like and comment totals for an author. Drafts count only for the author. Views are estimated.
// @Tags         analytics
// @Produce      json
// @Param        userId  path  string  true  "Author ID"
// @Success      200  {object}  response.Envelope{data=StatsResponse}
// @Failure      404  {object}  response.Envelope
// @Router       /analytics/users/{userId} [get]
func (h *AnalyticsHandler) AuthorStats(c *gin.Context, viewer auth.Viewer) {
	stats, err := h.analyticsUseCase.GetAuthorStats(c.Request.Context(), viewer, c.Param("userId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Analytics fetched successfully", StatsResponse{
		TotalBlogs:    stats.TotalBlogs,
		TotalLikes:    stats.TotalLikes,
		TotalComments: stats.TotalComments,
		TotalViews:    stats.TotalViews,
	})
}
