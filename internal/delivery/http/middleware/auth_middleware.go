package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"go-jobboard-client/internal/domain"
	"go-jobboard-client/internal/session"
	"go-jobboard-client/pkg/logger"
)

// SessionKey is the gin context key holding the loaded *session.Session.
const SessionKey = "Session"

// LoadSession resolves the session cookie into the current user, if any.
// Anonymous and expired-session requests pass through without identity;
// route guards below decide what that means per route.
func LoadSession(store session.Store, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		sess, err := store.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.Next()
			return
		}

		if sess.Expired(time.Now()) {
			// Stale token: drop the session so the user is asked to sign in again.
			if err := store.Delete(c.Request.Context(), sessionID); err != nil {
				logger.Log.Warn("auth: failed to delete expired session", "error", err)
			}
			c.Next()
			return
		}

		c.Set(SessionKey, sess)
		c.Set(string(domain.KeyUserID), sess.User.ID)
		c.Set(string(domain.KeyUserEmail), sess.User.Email)
		c.Set(string(domain.KeyUserRole), sess.User.Role)

		// Propagate identity and bearer token to usecases and gateways.
		ctx := c.Request.Context()
		ctx = domain.WithToken(ctx, sess.Token)
		ctx = contextWithIdentity(ctx, sess)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAuth redirects anonymous page requests to the login form; JSON
// requests get a 401 envelope instead.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(SessionKey); ok {
			c.Next()
			return
		}

		if wantsJSON(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authentication required",
			})
			return
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

// RequireAdmin sends non-admin users back to the public jobs listing rather
// than showing the protected view.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			if wantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "Authentication required",
				})
				return
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if sess.User.Role != domain.RoleAdmin {
			if wantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
					"success": false,
					"message": "Admin access required",
				})
				return
			}
			c.Redirect(http.StatusFound, "/jobs")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentSession returns the session loaded for this request, or nil.
func CurrentSession(c *gin.Context) *session.Session {
	value, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, _ := value.(*session.Session)
	return sess
}

func contextWithIdentity(ctx context.Context, sess *session.Session) context.Context {
	ctx = context.WithValue(ctx, domain.KeyUserID, sess.User.ID)
	ctx = context.WithValue(ctx, domain.KeyUserEmail, sess.User.Email)
	ctx = context.WithValue(ctx, domain.KeyUserRole, sess.User.Role)
	return ctx
}

func wantsJSON(c *gin.Context) bool {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
