package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fedaykin-adel/sietch-shop/internal/http/response"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/ctxutil"
	"github.com/fedaykin-adel/sietch-shop/internal/platform/logger"
	"github.com/fedaykin-adel/sietch-shop/internal/services"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "auth"

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, authService: authService}
}

// RequireSession verifies the auth cookie exactly once per request and
// attaches the resulting identity to the request context.
func (am *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorBody{Error: "not authenticated"})
			return
		}
		identity, err := am.authService.VerifyToken(token)
		if err != nil {
			am.log.Debug("Session rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorBody{Error: "invalid or expired session"})
			return
		}
		ctx := ctxutil.WithSessionData(c.Request.Context(), &ctxutil.SessionData{
			Token:    token,
			Identity: identity,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
