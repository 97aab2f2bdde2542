package handlers

import (
	"net/http"
	"strings"

	"flota_ot/internal/domain/entities"
	"flota_ot/internal/usecase"
	"flota_ot/pkg"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

var (
	errMissingSession = pkg.NewDomainErrorSimple("MISSING_SESSION", "Missing session token", http.StatusUnauthorized)
	errInvalidSession = pkg.NewDomainErrorSimple("INVALID_SESSION", "Session not found or expired", http.StatusUnauthorized)
	errForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Missing permission for this module", http.StatusForbidden)
)

// RequireSession resolves the session token (Bearer or X-Session-Token) and
// stores the session in the request context.
func RequireSession(sessions usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
			return
		}

		session, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidSession.HTTPStatus, errInvalidSession.ToHTTPError())
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// RequirePermission gates a route group on one module/access grant.
func RequirePermission(p entities.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFromContext(c)
		if !ok || !session.HasPermission(p) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// SessionFromContext returns the session stored by RequireSession.
func SessionFromContext(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return entities.Session{}, false
	}
	session, ok := v.(entities.Session)
	return session, ok
}

func extractToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return strings.TrimSpace(c.GetHeader("X-Session-Token"))
}
