package http

import (
	"strconv"
	"strings"

	"blog-platform/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// queryInt reads an optional integer query parameter. Missing means 0 so
// the usecase applies its default.
func queryInt(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.Validation(key + " must be a number")
	}
	return n, nil
}

func pageQuery(c *gin.Context) (int, int, error) {
	page, err := queryInt(c, "page")
	if err != nil {
		return 0, 0, err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

// optionalField returns a pointer to the form value when the client sent a
// non-blank value. Blank fields keep what is stored.
func optionalField(value string, present bool) *string {
	if !present || strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
