package http

import (
	"net/http"

	"blog-platform/pkg/apperror"
	"blog-platform/pkg/auth"
	"blog-platform/pkg/response"
	"blog-platform/services/blog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProfileRequest struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
	Password *string `json:"password"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account and return a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201  {object}  response.Envelope{data=AuthResponse}
// @Failure      400  {object}  response.Envelope
// @Failure      409  {object}  response.Envelope
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Wrap(apperror.KindValidation, "Invalid request body", err))
		return
	}

	user, token, err := h.authUseCase.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", AuthResponse{
		Token: token,
		User:  newUserResponse(user),
	})
}

// Login godoc
// @Summary      Login user
// @Description  Verify credentials and return a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  response.Envelope{data=AuthResponse}
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Wrap(apperror.KindValidation, "Please provide email and password", err))
		return
	}

	user, token, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", AuthResponse{
		Token: token,
		User:  newUserResponse(user),
	})
}

// Me godoc
// @Summary      Get current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Envelope{data=UserResponse}
// @Failure      401  {object}  response.Envelope
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context, user auth.Identity) {
	current, err := h.authUseCase.GetUser(c.Request.Context(), user.ID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User fetched successfully", newUserResponse(current))
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Replace any of name, bio, avatar and password. Omitted fields are kept.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ProfileRequest true "Profile fields"
// @Success      200  {object}  response.Envelope{data=UserResponse}
// @Failure      400  {object}  response.Envelope
// @Failure      401  {object}  response.Envelope
// @Router       /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context, user auth.Identity) {
	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Wrap(apperror.KindValidation, "Invalid request body", err))
		return
	}

	updated, err := h.authUseCase.UpdateProfile(c.Request.Context(), user.ID, usecase.ProfileInput{
		Name:     req.Name,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", newUserResponse(updated))
}
