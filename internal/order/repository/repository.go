package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderRepository defines data access operations for the ordered collection.
// Order documents are caller-supplied and stored as-is, so the repository
// works with raw bson documents rather than a fixed schema.
type OrderRepository interface {
	Insert(ctx context.Context, order bson.M) (primitive.ObjectID, error)
	FindByBuyer(ctx context.Context, buyerID string) ([]bson.M, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error)
}
