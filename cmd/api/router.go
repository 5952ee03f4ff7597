package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authDelivery "reservia-backend/internal/auth/delivery"
	authUsecase "reservia-backend/internal/auth/usecase"
	foodDelivery "reservia-backend/internal/food/delivery"
	foodUsecase "reservia-backend/internal/food/usecase"
	orderDelivery "reservia-backend/internal/order/delivery"
	orderUsecase "reservia-backend/internal/order/usecase"
	userDelivery "reservia-backend/internal/user/delivery"
	userUsecase "reservia-backend/internal/user/usecase"
)

// SetupRoutes wires every route to its handler. Every mutating route sits
// behind the auth guard; reads, registration and token issuance are open.
func SetupRoutes(r *gin.Engine, tokens authUsecase.TokenUsecase, foods foodUsecase.FoodUsecase, orders orderUsecase.OrderUsecase, users userUsecase.UserUsecase) {
	authHandler := authDelivery.NewAuthHandler(tokens)
	foodHandler := foodDelivery.NewFoodHandler(foods)
	orderHandler := orderDelivery.NewOrderHandler(orders)
	userHandler := userDelivery.NewUserHandler(users)

	guard := authDelivery.AuthMiddleware(tokens)

	// default route
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "reservia server is running...")
	})

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Session token issuance
	r.POST("/jwt", authHandler.IssueToken)

	// Food routes
	r.POST("/add", guard, foodHandler.AddFood)
	r.GET("/foods", foodHandler.GetFoods)
	r.GET("/foods/:id", foodHandler.GetFoodByID)
	r.GET("/top-foods", foodHandler.GetTopFoods)
	r.PATCH("/food", guard, foodHandler.UpdateStock)

	// Order placement
	r.POST("/order", guard, orderHandler.PlaceOrder)

	// User registration
	r.POST("/user", userHandler.CreateUser)

	api := r.Group("/api")
	{
		api.GET("/foods-length", foodHandler.GetFoodsLength)
		api.GET("/foods/search", foodHandler.SearchFoods)
		api.GET("/my-added/foods", guard, foodHandler.GetMyFoods)
		api.PATCH("/food/update", guard, foodHandler.UpdateFood)
		api.DELETE("/ordered/delete", guard, orderHandler.DeleteOrder)
		api.GET("/my-ordered/foods", guard, orderHandler.GetMyOrders)
	}
}
