package delivery

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservia-backend/internal/auth/usecase"
)

func newAuthRouter(tokens usecase.TokenUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(tokens)
	r.POST("/jwt", h.IssueToken)
	return r
}

func TestIssueToken_SetsCookie(t *testing.T) {
	tokens := usecase.NewTokenUsecase("secret", time.Hour)
	r := newAuthRouter(tokens)

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"uid":"u1"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"success":true`)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.Zero(t, cookie.MaxAge)

	// the cookie value must verify and carry the original payload
	claims, err := tokens.Verify(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims["uid"])
}

func TestIssueToken_BadBody(t *testing.T) {
	tokens := usecase.NewTokenUsecase("secret", time.Hour)
	r := newAuthRouter(tokens)

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), `"error_kind":"invalid_input"`)
}
