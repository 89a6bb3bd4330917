package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blog-platform/pkg/apperror"
	"blog-platform/pkg/auth"
	"blog-platform/pkg/logger"
	"blog-platform/pkg/middleware"
	"blog-platform/services/blog/internal/entity"
	"blog-platform/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testUser = auth.Identity{ID: "user-123", Name: "Alice", Email: "alice@example.com"}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(logger.New()))
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func jsonRequest(method, path, body string) *http.Request {
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegister_Success(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)
	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	user := &entity.User{ID: "user-1", Name: "Alice", Email: "alice@example.com", Password: "hash"}
	mockUseCase.On("Register", mock.Anything, usecase.RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "secret1",
	}).Return(user, "signed-token", nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/auth/register", `{"name":"Alice","email":"alice@example.com","password":"secret1"}`))

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)

	var data AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "signed-token", data.Token)
	assert.Equal(t, "alice@example.com", data.User.Email)
	assert.NotContains(t, w.Body.String(), "hash")
	mockUseCase.AssertExpectations(t)
}

func TestRegister_Conflict(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)
	router := setupTestRouter()
	router.POST("/auth/register", handler.Register)

	mockUseCase.On("Register", mock.Anything, mock.Anything).
		Return(nil, "", apperror.Conflict("User already exists with this email"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/auth/register", `{"name":"Alice","email":"a@b.co","password":"secret1"}`))

	assert.Equal(t, http.StatusConflict, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "User already exists with this email", env.Message)
	assert.Equal(t, "null", string(env.Data))
}

func TestLogin_MissingFields(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)
	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/auth/login", `{"email":"alice@example.com"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please provide email and password", decode(t, w).Message)
	mockUseCase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)
	router := setupTestRouter()
	router.POST("/auth/login", handler.Login)

	mockUseCase.On("Login", mock.Anything, "alice@example.com", "wrong").
		Return(nil, "", apperror.Unauthorized("Invalid email or password"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/auth/login", `{"email":"alice@example.com","password":"wrong"}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w).Message)
}

func TestMe(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)
	router := setupTestRouter()
	router.GET("/auth/me", func(c *gin.Context) { handler.Me(c, testUser) })

	mockUseCase.On("GetUser", mock.Anything, testUser.ID).
		Return(&entity.User{ID: testUser.ID, Name: "Alice", Bio: "writer"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var data UserResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, "writer", data.Bio)
}

func TestUpdateProfile_PartialFields(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase)
	router := setupTestRouter()
	router.PUT("/auth/profile", func(c *gin.Context) { handler.UpdateProfile(c, testUser) })

	mockUseCase.On("UpdateProfile", mock.Anything, testUser.ID, mock.MatchedBy(func(in usecase.ProfileInput) bool {
		return in.Bio != nil && *in.Bio == "New bio" && in.Name == nil && in.Password == nil
	})).Return(&entity.User{ID: testUser.ID, Name: "Alice", Bio: "New bio"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/auth/profile", `{"bio":"New bio"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListPosts_PassesQuery(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, 5<<20, logger.New())
	router := setupTestRouter()
	router.GET("/blogs", handler.ListPosts)

	posts := []*entity.Post{{
		ID:          "post-1",
		Title:       "Hello World",
		Content:     "<p>body</p>",
		ContentText: "body",
		Status:      entity.StatusPublished,
		Author:      &entity.Author{ID: "user-1", Name: "Alice", Email: "alice@example.com", Bio: "hidden in lists"},
	}}
	mockUseCase.On("ListPosts", mock.Anything, usecase.ListParams{
		Page: 2, Limit: 10, Search: "go", SortBy: "title", Order: "asc",
	}).Return(&usecase.PostPage{Items: posts, Page: 2, Limit: 10, Total: 15}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs?page=2&limit=10&search=go&sortBy=title&order=asc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var data struct {
		Items      []map[string]interface{} `json:"items"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
			Pages int   `json:"pages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	require.Len(t, data.Items, 1)
	assert.Equal(t, 2, data.Pagination.Pages)
	assert.Equal(t, int64(15), data.Pagination.Total)
	assert.NotContains(t, data.Items[0], "content")
	assert.Equal(t, "body", data.Items[0]["excerpt"])
	author := data.Items[0]["author"].(map[string]interface{})
	assert.Equal(t, "alice@example.com", author["email"])
	assert.NotContains(t, author, "bio")
	mockUseCase.AssertExpectations(t)
}

func TestListPosts_BadPage(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, 5<<20, logger.New())
	router := setupTestRouter()
	router.GET("/blogs", handler.ListPosts)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs?page=abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "page must be a number", decode(t, w).Message)
	mockUseCase.AssertNotCalled(t, "ListPosts", mock.Anything, mock.Anything)
}

func TestListPosts_InternalErrorHidesCause(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, 5<<20, logger.New())
	router := setupTestRouter()
	router.GET("/blogs", handler.ListPosts)

	mockUseCase.On("ListPosts", mock.Anything, mock.Anything).
		Return(nil, errors.New("pq: connection refused"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Internal server error", env.Message)
	assert.NotContains(t, w.Body.String(), "pq:")
}

func TestGetPost_Detail(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, 5<<20, logger.New())
	router := setupTestRouter()
	router.GET("/blogs/:id", func(c *gin.Context) { handler.GetPost(c, auth.Authenticated(testUser)) })

	detail := &usecase.PostDetail{
		Post: &entity.Post{
			ID: "post-1", Title: "Hello World", Content: "<p>body</p>", ContentText: "body",
			LikesCount: 1, CommentsCount: 1,
			Author: &entity.Author{ID: "user-1", Name: "Alice", Bio: "writer"},
		},
		Comments: []*entity.Comment{{
			ID: "comment-1", PostID: "post-1", Content: "nice",
			Author: &entity.Author{ID: testUser.ID, Name: "Alice"},
		}},
		IsLiked: true,
	}
	mockUseCase.On("GetPost", mock.Anything, auth.Authenticated(testUser), "post-1").Return(detail, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs/post-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var data PostDetailResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.True(t, data.IsLiked)
	assert.Equal(t, "<p>body</p>", data.Content)
	assert.Equal(t, "writer", data.Author.Bio)
	require.Len(t, data.Comments, 1)
	assert.Equal(t, "post-1", data.Comments[0].BlogID)
}

func TestGetPost_NotFound(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, 5<<20, logger.New())
	router := setupTestRouter()
	router.GET("/blogs/:id", func(c *gin.Context) { handler.GetPost(c, auth.Anonymous()) })

	mockUseCase.On("GetPost", mock.Anything, auth.Anonymous(), "missing").
		Return(nil, apperror.NotFound("Blog not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Blog not found", decode(t, w).Message)
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func multipartRequest(t *testing.T, method, path string, fields map[string]string, file []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if file != nil {
		part, err := writer.CreateFormFile("coverImage", "cover.txt")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestCreatePost_Multipart(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, 5<<20, logger.New())
	router := setupTestRouter()
	router.POST("/blogs", func(c *gin.Context) { handler.CreatePost(c, testUser) })

	created := &entity.Post{ID: "post-1", Title: "Hello World", CoverImage: "https://media.test/covers/x.png", CreatedAt: time.Now()}
	mockUseCase.On("CreatePost", mock.Anything, testUser, mock.MatchedBy(func(in usecase.CreatePostInput) bool {
		return in.Title == "Hello World" &&
			in.Content == "<p>Body text</p>" &&
			in.Status == "" &&
			in.Cover != nil &&
			in.Cover.ContentType == "image/png" &&
			in.Cover.Size == int64(len(pngHeader))
	})).Return(created, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "POST", "/blogs", map[string]string{
		"title":   "Hello World",
		"content": "<p>Body text</p>",
	}, pngHeader))

	assert.Equal(t, http.StatusCreated, w.Code)
	var data PostResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, created.CoverImage, data.CoverImage)
	mockUseCase.AssertExpectations(t)
}

func TestCreatePost_WithoutCover(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, 5<<20, logger.New())
	router := setupTestRouter()
	router.POST("/blogs", func(c *gin.Context) { handler.CreatePost(c, testUser) })

	mockUseCase.On("CreatePost", mock.Anything, testUser, mock.MatchedBy(func(in usecase.CreatePostInput) bool {
		return in.Cover == nil
	})).Return(nil, apperror.Validation("Please upload a cover image"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "POST", "/blogs", map[string]string{
		"title":   "Hello World",
		"content": "<p>Body text</p>",
	}, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please upload a cover image", decode(t, w).Message)
}

func TestCreatePost_BodyTooLarge(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, 16, logger.New())
	router := setupTestRouter()
	router.POST("/blogs", func(c *gin.Context) { handler.CreatePost(c, testUser) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "POST", "/blogs", map[string]string{"title": "Hello World"},
		bytes.Repeat([]byte("x"), formOverhead+64)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "CreatePost", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePost_PartialForm(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, 5<<20, logger.New())
	router := setupTestRouter()
	router.PUT("/blogs/:id", func(c *gin.Context) { handler.UpdatePost(c, testUser) })

	mockUseCase.On("UpdatePost", mock.Anything, testUser, "post-1", mock.MatchedBy(func(in usecase.UpdatePostInput) bool {
		return in.Title != nil && *in.Title == "New Title" &&
			in.Content == nil && in.Status == nil && in.Cover == nil
	})).Return(&entity.Post{ID: "post-1", Title: "New Title"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "PUT", "/blogs/post-1", map[string]string{"title": "New Title"}, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdatePost_BlankFieldsAreNotSent(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, 5<<20, logger.New())
	router := setupTestRouter()
	router.PUT("/blogs/:id", func(c *gin.Context) { handler.UpdatePost(c, testUser) })

	mockUseCase.On("UpdatePost", mock.Anything, testUser, "post-1", mock.MatchedBy(func(in usecase.UpdatePostInput) bool {
		return in.Title == nil && in.Content == nil &&
			in.Status != nil && *in.Status == "draft"
	})).Return(&entity.Post{ID: "post-1", Title: "Kept Title"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "PUT", "/blogs/post-1",
		map[string]string{"title": "", "content": "  ", "status": "draft"}, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdatePost_Forbidden(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, 5<<20, logger.New())
	router := setupTestRouter()
	router.PUT("/blogs/:id", func(c *gin.Context) { handler.UpdatePost(c, testUser) })

	mockUseCase.On("UpdatePost", mock.Anything, testUser, "post-1", mock.Anything).
		Return(nil, apperror.Forbidden("Not authorized to update this blog"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartRequest(t, "PUT", "/blogs/post-1", map[string]string{"title": "New Title"}, nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, decode(t, w).Success)
}

func TestDeletePost(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, 5<<20, logger.New())
	router := setupTestRouter()
	router.DELETE("/blogs/:id", func(c *gin.Context) { handler.DeletePost(c, testUser) })

	mockUseCase.On("DeletePost", mock.Anything, testUser, "post-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/blogs/post-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "null", string(env.Data))
}

func TestMyPosts_StatusFilter(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, 5<<20, logger.New())
	router := setupTestRouter()
	router.GET("/blogs/my-blogs", func(c *gin.Context) { handler.MyPosts(c, testUser) })

	mockUseCase.On("ListMyPosts", mock.Anything, testUser, "draft", 0, 0).
		Return(&usecase.PostPage{Items: []*entity.Post{}, Page: 1, Limit: 10, Total: 0}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs/my-blogs?status=draft", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`)
	mockUseCase.AssertExpectations(t)
}

func TestUserPosts(t *testing.T) {
	mockUseCase := new(MockPostUseCase)
	handler := NewPostHandler(mockUseCase, 5<<20, logger.New())
	router := setupTestRouter()
	router.GET("/blogs/user/:userId", func(c *gin.Context) { handler.UserPosts(c, auth.Anonymous()) })

	mockUseCase.On("ListUserPosts", mock.Anything, auth.Anonymous(), "user-9", 1, 5).
		Return(&usecase.PostPage{Items: []*entity.Post{}, Page: 1, Limit: 5}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs/user/user-9?page=1&limit=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestToggleLike(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase)
	router := setupTestRouter()
	router.POST("/blogs/:id/like", func(c *gin.Context) { handler.ToggleLike(c, testUser) })

	mockUseCase.On("ToggleLike", mock.Anything, testUser, "post-1").
		Return(&usecase.LikeState{IsLiked: true, LikesCount: 3}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/blogs/post-1/like", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.Equal(t, "Blog liked", env.Message)
	assert.JSONEq(t, `{"isLiked":true,"likesCount":3}`, string(env.Data))
}

func TestLikeStatus_NotFound(t *testing.T) {
	mockUseCase := new(MockLikeUseCase)
	handler := NewLikeHandler(mockUseCase)
	router := setupTestRouter()
	router.GET("/blogs/:id/like-status", func(c *gin.Context) { handler.LikeStatus(c, testUser) })

	mockUseCase.On("GetLikeStatus", mock.Anything, testUser, "post-1").
		Return(nil, apperror.NotFound("Blog not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs/post-1/like-status", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddComment(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase)
	router := setupTestRouter()
	router.POST("/blogs/:id/comments", func(c *gin.Context) { handler.AddComment(c, testUser) })

	mockUseCase.On("AddComment", mock.Anything, testUser, "post-1", "Great post").
		Return(&entity.Comment{ID: "c-1", PostID: "post-1", Content: "Great post", Author: &entity.Author{ID: testUser.ID, Name: "Alice", Email: "alice@example.com"}}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/blogs/post-1/comments", `{"content":"Great post"}`))

	assert.Equal(t, http.StatusCreated, w.Code)
	var data CommentResponse
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	assert.Equal(t, "Alice", data.Author.Name)
	assert.Empty(t, data.Author.Email)
}

func TestAddComment_BadBody(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase)
	router := setupTestRouter()
	router.POST("/blogs/:id/comments", func(c *gin.Context) { handler.AddComment(c, testUser) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/blogs/post-1/comments", `{"content":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "AddComment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAndDeleteComment(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase)
	router := setupTestRouter()
	router.PUT("/blogs/comments/:commentId", func(c *gin.Context) { handler.UpdateComment(c, testUser) })
	router.DELETE("/blogs/comments/:commentId", func(c *gin.Context) { handler.DeleteComment(c, testUser) })

	mockUseCase.On("UpdateComment", mock.Anything, testUser, "c-1", "edited").
		Return(nil, apperror.Forbidden("Not authorized to update this comment"))
	mockUseCase.On("DeleteComment", mock.Anything, testUser, "c-1").Return(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PUT", "/blogs/comments/c-1", `{"content":"edited"}`))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/blogs/comments/c-1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListComments(t *testing.T) {
	mockUseCase := new(MockCommentUseCase)
	handler := NewCommentHandler(mockUseCase)
	router := setupTestRouter()
	router.GET("/blogs/:id/comments", func(c *gin.Context) { handler.ListComments(c, auth.Anonymous()) })

	mockUseCase.On("ListComments", mock.Anything, auth.Anonymous(), "post-1").Return([]*entity.Comment{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs/post-1/comments", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", string(decode(t, w).Data))
}

func TestAuthorStats(t *testing.T) {
	mockUseCase := new(MockAnalyticsUseCase)
	handler := NewAnalyticsHandler(mockUseCase)
	router := setupTestRouter()
	router.GET("/analytics/users/:userId", func(c *gin.Context) { handler.AuthorStats(c, auth.Anonymous()) })

	mockUseCase.On("GetAuthorStats", mock.Anything, auth.Anonymous(), "user-1").
		Return(&entity.AuthorStats{TotalBlogs: 2, TotalLikes: 3, TotalComments: 1, TotalViews: 11}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/analytics/users/user-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalBlogs":2,"totalLikes":3,"totalComments":1,"totalViews":11}`, string(decode(t, w).Data))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short text", excerpt("short text"))

	long := strings.Repeat("word ", 60)
	got := excerpt(long)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len([]rune(got)), excerptLength+3)
	assert.False(t, strings.Contains(got, "wor..."))
}
