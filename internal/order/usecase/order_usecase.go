package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"reservia-backend/internal/order/repository"
)

// Sentinel errors for order operations.
var (
	ErrInvalidID    = errors.New("invalid id format")
	ErrInvalidInput = errors.New("invalid input")
)

// OrderUsecase drives the order repository. Order bodies are caller-supplied
// snapshots of the purchased listing and are stored without schema
// validation. Placing an order does not touch the listing's count; the two
// writes are deliberately decoupled.
type OrderUsecase interface {
	Place(ctx context.Context, order bson.M) (string, error)
	GetByBuyer(ctx context.Context, buyerID string) ([]bson.M, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// orderUsecase implements OrderUsecase
type orderUsecase struct {
	orders repository.OrderRepository
}

// NewOrderUsecase creates a new instance of orderUsecase
func NewOrderUsecase(orders repository.OrderRepository) OrderUsecase {
	return &orderUsecase{
		orders: orders,
	}
}

func (u *orderUsecase) Place(ctx context.Context, order bson.M) (string, error) {
	if len(order) == 0 {
		return "", ErrInvalidInput
	}
	id, err := u.orders.Insert(ctx, order)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (u *orderUsecase) GetByBuyer(ctx context.Context, buyerID string) ([]bson.M, error) {
	if buyerID == "" {
		return nil, ErrInvalidInput
	}
	return u.orders.FindByBuyer(ctx, buyerID)
}

// Delete removes one order. A missing id yields a deleted count of zero, not
// an error.
func (u *orderUsecase) Delete(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, ErrInvalidID
	}
	return u.orders.DeleteByID(ctx, oid)
}
