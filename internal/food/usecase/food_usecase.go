package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"reservia-backend/internal/food/domain"
	"reservia-backend/internal/food/dto"
	"reservia-backend/internal/food/repository"
)

const (
	// maxPageSize bounds the limit query parameter; larger values are capped.
	maxPageSize = 100

	// topFoodsLimit is how many listings the top-foods ranking returns.
	topFoodsLimit = 6
)

// foodUsecase implements FoodUsecase
type foodUsecase struct {
	foods repository.FoodRepository
}

// NewFoodUsecase creates a new instance of foodUsecase
func NewFoodUsecase(foods repository.FoodRepository) FoodUsecase {
	return &foodUsecase{
		foods: foods,
	}
}

func (u *foodUsecase) Add(ctx context.Context, food *domain.Food) (string, error) {
	id, err := u.foods.Insert(ctx, food)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (u *foodUsecase) GetByID(ctx context.Context, id string) (*domain.Food, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	food, err := u.foods.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, ErrNotFound
	}
	return food, nil
}

func (u *foodUsecase) GetAll(ctx context.Context) ([]domain.Food, error) {
	return u.foods.FindAll(ctx)
}

func (u *foodUsecase) GetPage(ctx context.Context, page, limit int64) ([]domain.Food, error) {
	if page < 1 || limit < 1 {
		return nil, ErrInvalidInput
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return u.foods.FindPage(ctx, page, limit)
}

func (u *foodUsecase) GetByOwner(ctx context.Context, uid string) ([]domain.Food, error) {
	if uid == "" {
		return nil, ErrInvalidInput
	}
	return u.foods.FindByOwner(ctx, uid)
}

func (u *foodUsecase) Search(ctx context.Context, name string) ([]domain.Food, error) {
	if name == "" {
		return nil, ErrInvalidInput
	}
	return u.foods.SearchByName(ctx, name)
}

func (u *foodUsecase) Top(ctx context.Context) ([]domain.Food, error) {
	return u.foods.TopRanked(ctx, topFoodsLimit)
}

func (u *foodUsecase) Length(ctx context.Context) (int64, error) {
	return u.foods.Count(ctx)
}

func (u *foodUsecase) UpdateStock(ctx context.Context, id string, update dto.StockUpdate) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	if update.Count == nil && update.Quantity == nil {
		return 0, ErrInvalidInput
	}
	return u.foods.UpdateStock(ctx, oid, update)
}

func (u *foodUsecase) UpdateDetails(ctx context.Context, id string, update dto.DetailsUpdate) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	if update == (dto.DetailsUpdate{}) {
		return 0, ErrInvalidInput
	}
	return u.foods.UpdateDetails(ctx, oid, update)
}
