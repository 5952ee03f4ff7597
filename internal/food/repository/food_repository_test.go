package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"reservia-backend/internal/food/dto"
)

func TestSearchFilter_CaseInsensitive(t *testing.T) {
	filter := searchFilter("chicken")

	regex, ok := filter["name"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "chicken", regex.Pattern)
	assert.Equal(t, "i", regex.Options)
}

func TestSearchFilter_QuotesMetacharacters(t *testing.T) {
	filter := searchFilter("chicken (spicy).*")

	regex := filter["name"].(primitive.Regex)
	assert.Equal(t, `chicken \(spicy\)\.\*`, regex.Pattern)
}

func TestPageOpts_Window(t *testing.T) {
	opts := pageOpts(2, 5)

	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(5), *opts.Skip)
	assert.Equal(t, int64(5), *opts.Limit)
}

func TestPageOpts_FirstPage(t *testing.T) {
	opts := pageOpts(1, 10)

	assert.Equal(t, int64(0), *opts.Skip)
	assert.Equal(t, int64(10), *opts.Limit)
}

func TestTopRankedOpts_SortAndLimit(t *testing.T) {
	opts := topRankedOpts(6)

	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(6), *opts.Limit)

	sort, ok := opts.Sort.(bson.D)
	require.True(t, ok)
	require.Len(t, sort, 2)
	assert.Equal(t, "count", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
	assert.Equal(t, "_id", sort[1].Key)
	assert.Equal(t, 1, sort[1].Value)
}

func TestStockSet_OnlyPresentFields(t *testing.T) {
	count := int64(3)

	set := stockSet(dto.StockUpdate{Count: &count})

	assert.Equal(t, bson.M{"count": int64(3)}, set)
}

func TestStockSet_Empty(t *testing.T) {
	assert.Empty(t, stockSet(dto.StockUpdate{}))
}

func TestDetailsSet_OnlyPresentFields(t *testing.T) {
	name := "Chicken Curry"
	price := 9.5

	set := detailsSet(dto.DetailsUpdate{Name: &name, Price: &price})

	assert.Equal(t, bson.M{"name": "Chicken Curry", "price": 9.5}, set)
}

func TestDetailsSet_AllFields(t *testing.T) {
	name, image, category := "a", "b", "c"
	quantity := 4
	price := 1.5
	description, origin := "d", "e"

	set := detailsSet(dto.DetailsUpdate{
		Name:        &name,
		Image:       &image,
		Category:    &category,
		Quantity:    &quantity,
		Price:       &price,
		Description: &description,
		Origin:      &origin,
	})

	assert.Len(t, set, 7)
}
