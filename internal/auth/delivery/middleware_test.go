package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservia-backend/internal/auth/usecase"
)

func newGuardedRouter(tokens usecase.TokenUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(tokens), func(c *gin.Context) {
		claims := c.MustGet(ClaimsKey).(map[string]interface{})
		c.JSON(http.StatusOK, claims)
	})
	return r
}

func TestAuthMiddleware_NoCookie(t *testing.T) {
	tokens := usecase.NewTokenUsecase("secret", time.Hour)
	r := newGuardedRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), `"error_kind":"unauthorized"`)
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	tokens := usecase.NewTokenUsecase("secret", time.Hour)
	r := newGuardedRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "definitely.not.valid"})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), `"error_kind":"forbidden"`)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := usecase.NewTokenUsecase("secret", -time.Minute)
	tokenString, err := expired.Issue(map[string]interface{}{"uid": "u1"})
	require.NoError(t, err)

	r := newGuardedRouter(usecase.NewTokenUsecase("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: tokenString})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := usecase.NewTokenUsecase("secret", time.Hour)
	tokenString, err := tokens.Issue(map[string]interface{}{"uid": "u1"})
	require.NoError(t, err)

	r := newGuardedRouter(tokens)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: tokenString})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"uid":"u1"`)
}
