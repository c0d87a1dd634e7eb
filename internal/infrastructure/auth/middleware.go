package auth

import (
	"errors"
	"net/http"
	"strings"

	"assistencia_os/internal/domain/entities"
	"assistencia_os/pkg"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// TokenValidator turns a bearer token into a session.
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (entities.Session, error)
}

// Middleware requires a valid bearer token and stores the session on the context.
func Middleware(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing bearer token", http.StatusUnauthorized))
			return
		}

		session, err := v.ValidateAccessToken(strings.TrimSpace(token))
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, ErrExpiredToken) {
				msg = "Token has expired"
			}
			abort(c, pkg.NewDomainError("UNAUTHENTICATED", msg, err, http.StatusUnauthorized))
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// SessionFrom returns the authenticated session, or the zero session when the
// request did not pass through Middleware.
func SessionFrom(c *gin.Context) entities.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(entities.Session); ok {
			return s
		}
	}
	return entities.Session{}
}

// WithSession stores s on the context. Used by handler tests.
func WithSession(c *gin.Context, s entities.Session) {
	c.Set(sessionKey, s)
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	_ = c.Error(appErr)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
