package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	authUsecase "reservia-backend/internal/auth/usecase"
	foodUsecase "reservia-backend/internal/food/usecase"
	orderUsecase "reservia-backend/internal/order/usecase"
	userUsecase "reservia-backend/internal/user/usecase"
	"reservia-backend/pkg/config"
)

type Handler struct {
	tokens authUsecase.TokenUsecase
	foods  foodUsecase.FoodUsecase
	orders orderUsecase.OrderUsecase
	users  userUsecase.UserUsecase
	config *config.Config
}

func NewHandler(tokens authUsecase.TokenUsecase, foods foodUsecase.FoodUsecase, orders orderUsecase.OrderUsecase, users userUsecase.UserUsecase, cfg *config.Config) *Handler {
	return &Handler{
		tokens: tokens,
		foods:  foods,
		orders: orders,
		users:  users,
		config: cfg,
	}
}

// Router builds the gin engine with all middleware and routes and wraps it
// in the CORS handler. Credentials must be allowed for the token cookie to
// travel cross-site.
func (h *Handler) Router() http.Handler {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(Metrics())

	SetupRoutes(r, h.tokens, h.foods, h.orders, h.users)

	c := cors.New(cors.Options{
		AllowedOrigins:   h.config.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}
