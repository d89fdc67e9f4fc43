package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/grandnode/grandnode2-sub005/internal/store"
)

type record struct {
	ID    string `bson:"_id,omitempty"`
	Name  string `bson:"name"`
	Order int    `bson:"order"`
}

func TestInsertAssignsID(t *testing.T) {
	db := New()
	ctx := context.Background()

	id, err := db.InsertOne(ctx, "Record", record{Name: "a"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	var got record
	require.NoError(t, db.FindOne(ctx, "Record", bson.M{"_id": id}, &got))
	assert.Equal(t, "a", got.Name)
	assert.Equal(t, id, got.ID)
}

func TestFindOneNotFound(t *testing.T) {
	db := New()
	err := db.FindOne(context.Background(), "Record", bson.M{"name": "missing"}, &record{})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUniqueIndexRejectsDuplicates(t *testing.T) {
	db := New()
	ctx := context.Background()

	require.NoError(t, db.CreateIndexes(ctx, "Record", []store.IndexSpec{
		{Name: "Name", Unique: true, Keys: []store.IndexKey{{Field: "name"}}},
	}))

	_, err := db.InsertOne(ctx, "Record", record{Name: "a"})
	require.NoError(t, err)

	_, err = db.InsertOne(ctx, "Record", record{Name: "a"})
	require.Error(t, err)

	_, err = db.InsertOne(ctx, "Record", record{Name: "b"})
	require.NoError(t, err)
}

func TestUpdateByID(t *testing.T) {
	db := New()
	ctx := context.Background()

	id, err := db.InsertOne(ctx, "Record", record{Name: "a", Order: 1})
	require.NoError(t, err)

	require.NoError(t, db.UpdateByID(ctx, "Record", id, bson.M{"order": 7}))

	var got record
	require.NoError(t, db.FindOne(ctx, "Record", bson.M{"_id": id}, &got))
	assert.Equal(t, 7, got.Order)

	err = db.UpdateByID(ctx, "Record", "does-not-exist", bson.M{"order": 1})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCountMatchesNumericFilters(t *testing.T) {
	db := New()
	ctx := context.Background()

	docs := []interface{}{
		record{Name: "a", Order: 1},
		record{Name: "b", Order: 1},
		record{Name: "c", Order: 2},
	}
	_, err := db.InsertMany(ctx, "Record", docs)
	require.NoError(t, err)

	// filter ints compare against bson-decoded numbers
	n, err := db.Count(ctx, "Record", bson.M{"order": 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestCollationLocale(t *testing.T) {
	db := New()
	ctx := context.Background()

	require.NoError(t, db.CreateCollection(ctx, "Record", &store.Collation{Locale: "pl"}))
	assert.Equal(t, "pl", db.CollationLocale("Record"))
	assert.Empty(t, db.CollationLocale("Other"))
}
