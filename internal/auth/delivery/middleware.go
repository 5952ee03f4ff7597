package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reservia-backend/internal/auth/usecase"
	"reservia-backend/pkg/apierr"
)

// CookieName is the cookie the guard reads the session token from.
const CookieName = "token"

// ClaimsKey is the gin context key the verified token payload is stored
// under for downstream handlers.
const ClaimsKey = "claims"

// AuthMiddleware gates a route on a valid session token. A missing cookie is
// 401, a token that fails verification (bad signature or expired) is 403.
func AuthMiddleware(tokens usecase.TokenUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			apierr.Abort(c, http.StatusUnauthorized, apierr.KindUnauthorized, "authentication cookie required")
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			apierr.Abort(c, http.StatusForbidden, apierr.KindForbidden, "invalid or expired token")
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
