package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"reservia-backend/internal/user/usecase"
	"reservia-backend/pkg/apierr"
)

// UserHandler handles user registration
type UserHandler struct {
	users usecase.UserUsecase
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

// CreateUser stores a caller-supplied user profile
// POST /user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var user bson.M
	if err := c.ShouldBindJSON(&user); err != nil {
		apierr.JSON(c, http.StatusBadRequest, apierr.KindInvalidInput, "request body must be a JSON object")
		return
	}

	id, err := h.users.Register(c.Request.Context(), user)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			apierr.JSON(c, http.StatusBadRequest, apierr.KindInvalidInput, err.Error())
			return
		}
		log.Error().Err(err).Msg("store operation failed")
		apierr.JSON(c, http.StatusInternalServerError, apierr.KindStoreError, "store operation failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}
