package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"reservia-backend/internal/food/domain"
	"reservia-backend/internal/food/dto"
)

// FoodRepository defines data access operations for the foods collection.
// Find methods return (nil, nil) when no document matches; update methods
// return the modified count and never treat zero as an error.
type FoodRepository interface {
	Insert(ctx context.Context, food *domain.Food) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Food, error)
	FindAll(ctx context.Context) ([]domain.Food, error)
	FindPage(ctx context.Context, page, limit int64) ([]domain.Food, error)
	FindByOwner(ctx context.Context, uid string) ([]domain.Food, error)
	SearchByName(ctx context.Context, name string) ([]domain.Food, error)
	TopRanked(ctx context.Context, limit int64) ([]domain.Food, error)
	UpdateStock(ctx context.Context, id primitive.ObjectID, update dto.StockUpdate) (int64, error)
	UpdateDetails(ctx context.Context, id primitive.ObjectID, update dto.DetailsUpdate) (int64, error)
	Count(ctx context.Context) (int64, error)
}
