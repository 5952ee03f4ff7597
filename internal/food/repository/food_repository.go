package repository

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"reservia-backend/internal/food/domain"
	"reservia-backend/internal/food/dto"
)

const foodsCollection = "foods"

// foodRepository implements FoodRepository on top of a mongo collection
type foodRepository struct {
	col *mongo.Collection
}

// NewFoodRepository creates a new instance of foodRepository
func NewFoodRepository(db *mongo.Database) FoodRepository {
	return &foodRepository{
		col: db.Collection(foodsCollection),
	}
}

func (r *foodRepository) Insert(ctx context.Context, food *domain.Food) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, food)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("unexpected inserted id type")
	}
	return id, nil
}

func (r *foodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Food, error) {
	var food domain.Food
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &food, nil
}

func (r *foodRepository) FindAll(ctx context.Context) ([]domain.Food, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *foodRepository) FindPage(ctx context.Context, page, limit int64) ([]domain.Food, error) {
	return r.find(ctx, bson.M{}, pageOpts(page, limit))
}

func (r *foodRepository) FindByOwner(ctx context.Context, uid string) ([]domain.Food, error) {
	return r.find(ctx, bson.M{"uid": uid}, nil)
}

func (r *foodRepository) SearchByName(ctx context.Context, name string) ([]domain.Food, error) {
	return r.find(ctx, searchFilter(name), nil)
}

func (r *foodRepository) TopRanked(ctx context.Context, limit int64) ([]domain.Food, error) {
	return r.find(ctx, bson.M{"count": bson.M{"$gte": 0}}, topRankedOpts(limit))
}

func (r *foodRepository) UpdateStock(ctx context.Context, id primitive.ObjectID, update dto.StockUpdate) (int64, error) {
	set := stockSet(update)
	if len(set) == 0 {
		return 0, nil
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *foodRepository) UpdateDetails(ctx context.Context, id primitive.ObjectID, update dto.DetailsUpdate) (int64, error) {
	set := detailsSet(update)
	if len(set) == 0 {
		return 0, nil
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *foodRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *foodRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Food, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.col.Find(ctx, filter, opts)
	} else {
		cursor, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	foods := []domain.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, err
	}
	return foods, nil
}

// searchFilter builds a case-insensitive substring match on name. The
// caller-supplied pattern is quoted so regex metacharacters match literally.
func searchFilter(name string) bson.M {
	return bson.M{"name": primitive.Regex{
		Pattern: regexp.QuoteMeta(name),
		Options: "i",
	}}
}

// pageOpts computes the skip/limit window for a 1-based page number.
func pageOpts(page, limit int64) *options.FindOptions {
	return options.Find().
		SetSkip((page - 1) * limit).
		SetLimit(limit)
}

// topRankedOpts sorts by count descending with _id ascending as a
// deterministic tie-break.
func topRankedOpts(limit int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}).
		SetLimit(limit)
}

func stockSet(update dto.StockUpdate) bson.M {
	set := bson.M{}
	if update.Count != nil {
		set["count"] = *update.Count
	}
	if update.Quantity != nil {
		set["quantity"] = *update.Quantity
	}
	return set
}

func detailsSet(update dto.DetailsUpdate) bson.M {
	set := bson.M{}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Quantity != nil {
		set["quantity"] = *update.Quantity
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Origin != nil {
		set["origin"] = *update.Origin
	}
	return set
}
