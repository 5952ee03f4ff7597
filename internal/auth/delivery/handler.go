package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"reservia-backend/internal/auth/usecase"
	"reservia-backend/pkg/apierr"
)

// AuthHandler handles token issuance
type AuthHandler struct {
	tokens usecase.TokenUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(tokens usecase.TokenUsecase) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// IssueToken signs the request body into a session token and sets it as an
// HTTP-only, secure, cross-site cookie. The cookie carries no Max-Age; the
// expiration embedded in the token is authoritative.
// POST /jwt
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		apierr.JSON(c, http.StatusBadRequest, apierr.KindInvalidInput, "request body must be a JSON object")
		return
	}

	token, err := h.tokens.Issue(payload)
	if err != nil {
		log.Error().Err(err).Msg("token signing failed")
		apierr.JSON(c, http.StatusInternalServerError, apierr.KindStoreError, "failed to issue token")
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(CookieName, token, 0, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
