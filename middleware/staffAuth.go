// File: middleware/staffAuth.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"
	"time"

	"management/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrNotAuthorized is reported when the caller is not a staff member.
var ErrNotAuthorized = errors.New("staff authorization required")

// VerdictCache remembers authorization verdicts keyed by token hash.
type VerdictCache interface {
	Get(ctx context.Context, tokenHash string) (utils.StaffVerdict, bool, error)
	Set(ctx context.Context, tokenHash string, verdict utils.StaffVerdict, tokenExpiry time.Time) error
}

// StaffAuth configures StaffAuthMiddleware. Cache may be nil.
type StaffAuth struct {
	Secret []byte
	Roles  []string
	Cache  VerdictCache
}

// StaffAuthMiddleware lets a request through only when its bearer token is
// valid and carries one of the staff roles. Everyone else gets a 401.
func StaffAuthMiddleware(auth StaffAuth) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := zap.L()
		if l, exists := c.Get("logger"); exists {
			if reqLogger, ok := l.(*zap.Logger); ok {
				logger = reqLogger
			}
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c)
			return
		}

		tokenHash := utils.HashToken(tokenString)
		ctx := c.Request.Context()

		if auth.Cache != nil {
			verdict, found, err := auth.Cache.Get(ctx, tokenHash)
			if err != nil {
				// Fall through to a full check; the cache is an optimization only.
				logger.Warn("staff verdict cache unavailable", zap.Error(err))
			} else if found {
				if !verdict.IsStaff {
					abortUnauthorized(c)
					return
				}
				c.Set("staffID", verdict.Subject)
				c.Next()
				return
			}
		}

		verdict, expiry, validated := auth.verify(tokenString)
		if validated && auth.Cache != nil {
			if err := auth.Cache.Set(ctx, tokenHash, verdict, expiry); err != nil {
				logger.Warn("failed to cache staff verdict", zap.Error(err))
			}
		}
		if !verdict.IsStaff {
			logger.Warn("staff authorization denied", zap.String("subject", verdict.Subject))
			abortUnauthorized(c)
			return
		}

		c.Set("staffID", verdict.Subject)
		c.Next()
	}
}

// verify reports validated=false for tokens that did not parse or pass
// signature checks. Without a secret nothing validates.
func (a StaffAuth) verify(tokenString string) (verdict utils.StaffVerdict, expiry time.Time, validated bool) {
	if len(a.Secret) == 0 {
		return verdict, expiry, false
	}
	token, err := utils.ValidateToken(a.Secret, tokenString)
	if err != nil || !token.Valid {
		return verdict, expiry, false
	}
	verdict.Subject = utils.TokenSubject(token)
	for _, role := range utils.TokenRoles(token) {
		if slices.Contains(a.Roles, role) {
			verdict.IsStaff = true
			break
		}
	}
	return verdict, utils.TokenExpiry(token), true
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Unauthorized",
		"error":   ErrNotAuthorized.Error(),
	})
}
