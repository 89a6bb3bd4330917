package middleware

import (
	"strings"

	"blog-platform/pkg/apperror"
	"blog-platform/pkg/auth"
	"blog-platform/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	viewerKey = "viewer"
	userIDKey = "user_id"
)

// AuthedHandler serves routes behind RequireAuth.
type AuthedHandler func(c *gin.Context, user auth.Identity)

// ViewerHandler serves routes behind OptionalAuth.
type ViewerHandler func(c *gin.Context, viewer auth.Viewer)

// RequireAuth rejects the request with 401 unless it carries a valid bearer
// token whose subject is a live account.
func RequireAuth(jwtService *jwt.Service, resolver auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abort(c, apperror.Unauthorized("Not authorized, no token"))
			return
		}

		identity, err := authenticate(c, jwtService, resolver, token)
		if err != nil {
			abort(c, err)
			return
		}

		setViewer(c, auth.Authenticated(*identity))
		c.Next()
	}
}

// OptionalAuth attaches an identity when the request carries a usable token
// and proceeds anonymously otherwise.
func OptionalAuth(jwtService *jwt.Service, resolver auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := auth.Anonymous()
		if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
			if identity, err := authenticate(c, jwtService, resolver, token); err == nil {
				viewer = auth.Authenticated(*identity)
			}
		}

		setViewer(c, viewer)
		c.Next()
	}
}

// Authed adapts an AuthedHandler to gin. It must run after RequireAuth.
func Authed(h AuthedHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := ViewerFrom(c).Identity()
		if !ok {
			abort(c, apperror.Unauthorized("Not authorized"))
			return
		}
		h(c, identity)
	}
}

func WithViewer(h ViewerHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		h(c, ViewerFrom(c))
	}
}

// ViewerFrom returns the viewer attached by the auth middleware, or an
// anonymous viewer when none ran.
func ViewerFrom(c *gin.Context) auth.Viewer {
	if v, ok := c.Get(viewerKey); ok {
		if viewer, ok := v.(auth.Viewer); ok {
			return viewer
		}
	}
	return auth.Anonymous()
}

func authenticate(c *gin.Context, jwtService *jwt.Service, resolver auth.Resolver, token string) (*auth.Identity, error) {
	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindUnauthorized, "Not authorized, token failed", err)
	}

	identity, err := resolver.ResolveIdentity(c.Request.Context(), claims.UserID)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.Wrap(apperror.KindUnauthorized, "User not found", err)
		}
		return nil, err
	}
	return identity, nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func setViewer(c *gin.Context, viewer auth.Viewer) {
	c.Set(viewerKey, viewer)
	if viewer.IsAuthenticated() {
		c.Set(userIDKey, viewer.UserID())
	}
}
