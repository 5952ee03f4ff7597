package usecase

import (
	"context"

	"reservia-backend/internal/food/domain"
	"reservia-backend/internal/food/dto"
)

// FoodUsecase validates input and drives the food repository. String ids are
// parsed and checked here so malformed ids never reach the store.
type FoodUsecase interface {
	Add(ctx context.Context, food *domain.Food) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Food, error)
	GetAll(ctx context.Context) ([]domain.Food, error)
	GetPage(ctx context.Context, page, limit int64) ([]domain.Food, error)
	GetByOwner(ctx context.Context, uid string) ([]domain.Food, error)
	Search(ctx context.Context, name string) ([]domain.Food, error)
	Top(ctx context.Context) ([]domain.Food, error)
	Length(ctx context.Context) (int64, error)
	UpdateStock(ctx context.Context, id string, update dto.StockUpdate) (int64, error)
	UpdateDetails(ctx context.Context, id string, update dto.DetailsUpdate) (int64, error)
}
