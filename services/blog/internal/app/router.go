package app

import (
	"net/http"
	"time"

	"blog-platform/pkg/config"
	"blog-platform/pkg/jwt"
	"blog-platform/pkg/logger"
	"blog-platform/pkg/middleware"
	"blog-platform/pkg/response"
	blogHTTP "blog-platform/services/blog/internal/controller/http"
	"blog-platform/services/blog/internal/repo/persistent"
	"blog-platform/services/blog/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the collaborators the router is built from. Redis and
// Events are optional.
type Dependencies struct {
	Config   *config.Config
	Logger   *logger.Logger
	JWT      *jwt.Service
	Redis    *redis.Client
	Users    persistent.UserRepository
	Posts    persistent.PostRepository
	Comments persistent.CommentRepository
	Media    usecase.MediaStorage
	Events   usecase.EventPublisher
}

func NewRouter(deps Dependencies) *gin.Engine {
	cfg, log := deps.Config, deps.Logger

	authUseCase := usecase.NewAuthUseCase(deps.Users, deps.JWT, log)
	postUseCase := usecase.NewPostUseCase(deps.Posts, deps.Comments, deps.Media, deps.Events, cfg.MaxUploadSize, log)
	likeUseCase := usecase.NewLikeUseCase(deps.Posts, deps.Events, log)
	commentUseCase := usecase.NewCommentUseCase(deps.Posts, deps.Comments, deps.Events, log)
	analyticsUseCase := usecase.NewAnalyticsUseCase(deps.Users, deps.Posts)

	authHandler := blogHTTP.NewAuthHandler(authUseCase)
	postHandler := blogHTTP.NewPostHandler(postUseCase, cfg.MaxUploadSize, log)
	likeHandler := blogHTTP.NewLikeHandler(likeUseCase)
	commentHandler := blogHTTP.NewCommentHandler(commentUseCase)
	analyticsHandler := blogHTTP.NewAnalyticsHandler(analyticsUseCase)

	r := gin.New()
	r.Use(gin.Logger(), middleware.Recovery(log), middleware.ErrorHandler(log))
	r.MaxMultipartMemory = cfg.MaxUploadSize

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	requireAuth := middleware.RequireAuth(deps.JWT, authUseCase)
	optionalAuth := middleware.OptionalAuth(deps.JWT, authUseCase)
	rateLimit := middleware.RateLimitMiddleware(deps.Redis, cfg.RateLimitPerMinute, time.Minute, log)
	authed := middleware.Authed
	viewing := middleware.WithViewer

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Server is running", gin.H{"timestamp": time.Now().UTC()})
	})

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", rateLimit, authHandler.Register)
		authRoutes.POST("/login", rateLimit, authHandler.Login)
		authRoutes.GET("/me", requireAuth, authed(authHandler.Me))
		authRoutes.PUT("/profile", requireAuth, rateLimit, authed(authHandler.UpdateProfile))
	}

	blogs := api.Group("/blogs")
	{
		blogs.GET("", optionalAuth, postHandler.ListPosts)
		blogs.GET("/my-blogs", requireAuth, authed(postHandler.MyPosts))
		blogs.GET("/user/:userId", optionalAuth, viewing(postHandler.UserPosts))
		blogs.GET("/:id", optionalAuth, viewing(postHandler.GetPost))
		blogs.POST("", requireAuth, rateLimit, authed(postHandler.CreatePost))
		blogs.PUT("/:id", requireAuth, rateLimit, authed(postHandler.UpdatePost))
		blogs.DELETE("/:id", requireAuth, rateLimit, authed(postHandler.DeletePost))

		blogs.POST("/:id/like", requireAuth, rateLimit, authed(likeHandler.ToggleLike))
		blogs.GET("/:id/like-status", requireAuth, authed(likeHandler.LikeStatus))

		blogs.GET("/:id/comments", optionalAuth, viewing(commentHandler.ListComments))
		blogs.POST("/:id/comments", requireAuth, rateLimit, authed(commentHandler.AddComment))
		blogs.PUT("/comments/:commentId", requireAuth, rateLimit, authed(commentHandler.UpdateComment))
		blogs.DELETE("/comments/:commentId", requireAuth, rateLimit, authed(commentHandler.DeleteComment))
	}

	api.GET("/analytics/users/:userId", optionalAuth, viewing(analyticsHandler.AuthorStats))

	r.NoRoute(middleware.NotFound)
	return r
}
