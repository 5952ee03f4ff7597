package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	api "reservia-backend/cmd/api"
	authUsecase "reservia-backend/internal/auth/usecase"
	foodRepo "reservia-backend/internal/food/repository"
	foodUsecase "reservia-backend/internal/food/usecase"
	orderRepo "reservia-backend/internal/order/repository"
	orderUsecase "reservia-backend/internal/order/usecase"
	userRepo "reservia-backend/internal/user/repository"
	userUsecase "reservia-backend/internal/user/usecase"
	"reservia-backend/pkg/config"
	"reservia-backend/pkg/database"
	"reservia-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		panic("configuration validation failed: " + err.Error())
	}

	logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// Initialize database
	client, db, err := database.NewMongoConnection(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Str("database", cfg.MongoDatabase).Msg("database connection established")

	// Initialize repositories (dependency injection)
	foodRepository := foodRepo.NewFoodRepository(db)
	orderRepository := orderRepo.NewOrderRepository(db)
	userRepository := userRepo.NewUserRepository(db)

	// Initialize use cases (dependency injection)
	tokens := authUsecase.NewTokenUsecase(cfg.JWTSecret, cfg.TokenExpiry)
	foods := foodUsecase.NewFoodUsecase(foodRepository)
	orders := orderUsecase.NewOrderUsecase(orderRepository)
	users := userUsecase.NewUserUsecase(userRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(tokens, foods, orders, users, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler.Router(),
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Graceful shutdown
	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("database disconnect error")
	}

	log.Info().Msg("graceful shutdown complete")
}
