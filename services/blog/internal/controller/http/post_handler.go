package http

import (
	"errors"
	"io"
	"net/http"

	"blog-platform/pkg/apperror"
	"blog-platform/pkg/auth"
	"blog-platform/pkg/logger"
	"blog-platform/pkg/response"
	"blog-platform/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

// formOverhead is the room left for text fields and multipart framing on
// top of the cover image itself.
const formOverhead = 1 << 20

type PostHandler struct {
	postUseCase   usecase.PostUseCase
	maxUploadSize int64
	logger        *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, maxUploadSize int64, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase:   postUseCase,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

func (h *PostHandler) paginated(c *gin.Context, message string, page *usecase.PostPage) {
	response.Paginated(c, http.StatusOK, message, newPostList(page.Items),
		response.NewPagination(page.Page, page.Limit, page.Total))
}

// ListPosts godoc
// @Summary      List published blogs
// @Description  Paginated published posts. Without sortBy a search is ordered by relevance, otherwise newest first.
// @Tags         blogs
// @Produce      json
// @Param        page    query  int     false  "Page number (default 1)"
// @Param        limit   query  int     false  "Page size (default 10, max 100)"
// @Param        search  query  string  false  "Full text query over title and body"
// @Param        sortBy  query  string  false  "Sort field" Enums(createdAt, updatedAt, title, likesCount, commentsCount)
// @Param        order   query  string  false  "Sort order" Enums(asc, desc)
// @Success      200  {object}  response.Envelope{data=response.Page}
// @Failure      400  {object}  response.Envelope
// @Router       /blogs [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, limit, err := pageQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.postUseCase.ListPosts(c.Request.Context(), usecase.ListParams{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.paginated(c, "Blogs fetched successfully", result)
}

// MyPosts godoc
// @Summary      List own blogs
// @Description  The caller's posts including drafts, newest first
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Filter by status" Enums(draft, published)
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  response.Envelope{data=response.Page}
// @Failure      401  {object}  response.Envelope
// @Router       /blogs/my-blogs [get]
func (h *PostHandler) MyPosts(c *gin.Context, user auth.Identity) {
	page, limit, err := pageQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.postUseCase.ListMyPosts(c.Request.Context(), user, c.Query("status"), page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	h.paginated(c, "Blogs fetched successfully", result)
}

// UserPosts godoc
// @Summary      List blogs by author
// @Tags         blogs
// @Produce      json
// @Param        userId  path   string  true   "Author ID"
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  response.Envelope{data=response.Page}
// @Router       /blogs/user/{userId} [get]
func (h *PostHandler) UserPosts(c *gin.Context, viewer auth.Viewer) {
	page, limit, err := pageQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	result, err := h.postUseCase.ListUserPosts(c.Request.Context(), viewer, c.Param("userId"), page, limit)
	if err != nil {
		c.Error(err)
		return
	}

	h.paginated(c, "Blogs fetched successfully", result)
}

// GetPost godoc
// @Summary      Get a blog
// @Description  A post with its comments. isLiked reflects the caller when authenticated.
// @Tags         blogs
// @Produce      json
// @Param        id   path  string  true  "Blog ID"
// @Success      200  {object}  response.Envelope{data=PostDetailResponse}
// @Failure      404  {object}  response.Envelope
// @Router       /blogs/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context, viewer auth.Viewer) {
	detail, err := h.postUseCase.GetPost(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog fetched successfully", newPostDetail(detail))
}

// CreatePost godoc
// @Summary      Create a blog
// @Description  Published posts require a cover image; drafts may omit it.
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title       formData  string  true   "Title (5-200 characters)"
// @Param        content     formData  string  true   "HTML body"
// @Param        status      formData  string  false  "draft or published (default published)"
// @Param        coverImage  formData  file    false  "Cover image (jpeg, png, gif, webp)"
// @Success      201  {object}  response.Envelope{data=PostResponse}
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /blogs [post]
func (h *PostHandler) CreatePost(c *gin.Context, user auth.Identity) {
	h.limitBody(c)
	defer h.cleanupForm(c)

	cover, closeCover, err := h.readCover(c)
	if err != nil {
		c.Error(err)
		return
	}
	defer closeCover()

	post, err := h.postUseCase.CreatePost(c.Request.Context(), user, usecase.CreatePostInput{
		Title:   c.PostForm("title"),
		Content: c.PostForm("content"),
		Status:  c.PostForm("status"),
		Cover:   cover,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Blog created successfully", newPostResponse(post, true))
}

// UpdatePost godoc
// @Summary      Update a blog
// @Description  Omitted fields keep their value. A new cover replaces and releases the old one.
// @Tags         blogs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id          path      string  true   "Blog ID"
// @Param        title       formData  string  false  "Title"
// @Param        content     formData  string  false  "HTML body"
// @Param        status      formData  string  false  "draft or published"
// @Param        coverImage  formData  file    false  "Cover image"
// @Success      200  {object}  response.Envelope{data=PostResponse}
// @Failure      400  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /blogs/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context, user auth.Identity) {
	h.limitBody(c)
	defer h.cleanupForm(c)

	cover, closeCover, err := h.readCover(c)
	if err != nil {
		c.Error(err)
		return
	}
	defer closeCover()

	post, err := h.postUseCase.UpdatePost(c.Request.Context(), user, c.Param("id"), usecase.UpdatePostInput{
		Title:   optionalField(c.GetPostForm("title")),
		Content: optionalField(c.GetPostForm("content")),
		Status:  optionalField(c.GetPostForm("status")),
		Cover:   cover,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog updated successfully", newPostResponse(post, true))
}

// DeletePost godoc
// @Summary      Delete a blog
// @Description  Releases the cover image, then removes the post with its likes and comments.
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Blog ID"
// @Success      200  {object}  response.Envelope
// @Failure      403  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /blogs/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context, user auth.Identity) {
	if err := h.postUseCase.DeletePost(c.Request.Context(), user, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Blog deleted successfully", nil)
}

func (h *PostHandler) limitBody(c *gin.Context) {
	if h.maxUploadSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize+formOverhead)
	}
}

// readCover opens the optional coverImage part. The content type is sniffed
// from the bytes rather than trusted from the part header.
func (h *PostHandler) readCover(c *gin.Context) (*usecase.Upload, func(), error) {
	noop := func() {}

	header, err := c.FormFile("coverImage")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, noop, apperror.Validation("Cover image is too large")
		}
		return nil, noop, apperror.Wrap(apperror.KindValidation, "Invalid multipart form", err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, apperror.Internal("Failed to read cover image", err)
	}
	closeFile := func() {
		if err := file.Close(); err != nil {
			h.logger.Warn("Failed to close cover upload: %v", err)
		}
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		closeFile()
		return nil, noop, apperror.Internal("Failed to read cover image", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		closeFile()
		return nil, noop, apperror.Internal("Failed to read cover image", err)
	}

	return &usecase.Upload{
		Reader:      file,
		Filename:    header.Filename,
		ContentType: http.DetectContentType(head[:n]),
		Size:        header.Size,
	}, closeFile, nil
}

// cleanupForm removes multipart temp files on every exit path.
func (h *PostHandler) cleanupForm(c *gin.Context) {
	if c.Request.MultipartForm == nil {
		return
	}
	if err := c.Request.MultipartForm.RemoveAll(); err != nil {
		h.logger.Warn("Failed to remove multipart temp files: %v", err)
	}
}
