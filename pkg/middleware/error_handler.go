package middleware

import (
	"net/http"

	"blog-platform/pkg/apperror"
	"blog-platform/pkg/logger"
	"blog-platform/pkg/response"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error recorded with c.Error as a failure
// envelope. Internal errors are logged with their cause; the client only
// sees the generic message.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		kind := apperror.KindOf(err)
		if kind == apperror.KindInternal {
			log.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}

		if c.Writer.Written() {
			return
		}
		response.Error(c, apperror.HTTPStatus(kind), apperror.MessageOf(err))
	}
}

func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		response.Error(c, http.StatusInternalServerError, apperror.MessageOf(nil))
	})
}

func NotFound(c *gin.Context) {
	response.Error(c, http.StatusNotFound, "Route "+c.Request.URL.Path+" not found")
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
