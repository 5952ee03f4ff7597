package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const orderedCollection = "ordered"

// orderRepository implements OrderRepository on top of a mongo collection
type orderRepository struct {
	col *mongo.Collection
}

// NewOrderRepository creates a new instance of orderRepository
func NewOrderRepository(db *mongo.Database) OrderRepository {
	return &orderRepository{
		col: db.Collection(orderedCollection),
	}
}

func (r *orderRepository) Insert(ctx context.Context, order bson.M) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *orderRepository) FindByBuyer(ctx context.Context, buyerID string) ([]bson.M, error) {
	cursor, err := r.col.Find(ctx, bson.M{"buyerId": buyerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []bson.M{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
