package middleware

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"

	"github.com/clinicware/dental-admin/internal/service/audit"
	"github.com/clinicware/dental-admin/pkg/apperror"
	"github.com/clinicware/dental-admin/pkg/auth"
	"github.com/clinicware/dental-admin/pkg/httputil"
)

const (
	ContextUserID = "user_id"
	ContextEmail  = "user_email"

	roleCacheTTL     = 5 * time.Minute
	roleCacheCleanup = 10 * time.Minute
)

// TokenValidator verifies bearer tokens.
type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// RoleSource answers role-membership queries for authenticated users.
type RoleSource interface {
	RolesFor(ctx context.Context, userID int64) ([]string, error)
}

// AuthMiddleware gates requests on a valid bearer token and on role
// membership. Role lookups hit the store once per user per TTL; entity
// reads themselves are never cached.
type AuthMiddleware struct {
	tokens TokenValidator
	roles  RoleSource
	cache  *gocache.Cache
}

func NewAuthMiddleware(tokens TokenValidator, roles RoleSource) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		roles:  roles,
		cache:  gocache.New(roleCacheTTL, roleCacheCleanup),
	}
}

// Authenticate validates the Authorization header and records the caller's
// identity for downstream handlers and the audit trail.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, apperror.Unauthorized("authorization header required"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abort(c, apperror.Unauthorized("invalid authorization header"))
			return
		}

		claims, err := m.tokens.Validate(parts[1])
		if err != nil {
			abort(c, apperror.Unauthorized("invalid or expired token"))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)

		ctx := audit.WithActor(c.Request.Context(), claims.Email)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRole allows the request through when the caller holds any of the
// given roles.
func (m *AuthMiddleware) RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := c.Get(ContextUserID)
		if !ok {
			abort(c, apperror.Unauthorized("authentication required"))
			return
		}

		held, err := m.rolesFor(c.Request.Context(), userID.(int64))
		if err != nil {
			abort(c, fmt.Errorf("failed to load roles: %w", err))
			return
		}

		for _, want := range roles {
			for _, have := range held {
				if have == want {
					c.Next()
					return
				}
			}
		}

		abort(c, apperror.Forbidden("insufficient role"))
	}
}

func (m *AuthMiddleware) rolesFor(ctx context.Context, userID int64) ([]string, error) {
	key := fmt.Sprintf("roles:%d", userID)
	if cached, ok := m.cache.Get(key); ok {
		return cached.([]string), nil
	}

	roles, err := m.roles.RolesFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	m.cache.Set(key, roles, gocache.DefaultExpiration)
	return roles, nil
}

func abort(c *gin.Context, err error) {
	httputil.Error(c, err)
	c.Abort()
}
