package installer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/grandnode/grandnode2-sub005/internal/models"
	"github.com/grandnode/grandnode2-sub005/internal/store/memory"
)

func TestOne_ExactlyOneMatch(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	_, err := db.InsertOne(ctx, models.TaxCategoryCollection, models.TaxCategory{Name: "Books"})
	require.NoError(t, err)

	tc, err := one[models.TaxCategory](ctx, db, models.TaxCategoryCollection, bson.M{"name": "Books"})
	require.NoError(t, err)
	assert.Equal(t, "Books", tc.Name)
	assert.NotEmpty(t, tc.ID)
}

func TestOne_NoMatchIsFatal(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	_, err := one[models.TaxCategory](ctx, db, models.TaxCategoryCollection, bson.M{"name": "Missing"})
	require.Error(t, err)

	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.EqualValues(t, 0, rerr.Matches)
	assert.Contains(t, err.Error(), "no "+models.TaxCategoryCollection)
}

func TestOne_AmbiguousMatchIsFatal(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	for range [2]struct{}{} {
		_, err := db.InsertOne(ctx, models.CategoryCollection, models.Category{Name: "Duplicated"})
		require.NoError(t, err)
	}

	_, err := one[models.Category](ctx, db, models.CategoryCollection, bson.M{"name": "Duplicated"})
	require.Error(t, err)

	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.EqualValues(t, 2, rerr.Matches)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestSpecificationOption_ResolvesEmbeddedOption(t *testing.T) {
	db := memory.New()
	ctx := context.Background()
	inst := &Installer{db: db}

	optionID := primitive.NewObjectID().Hex()
	_, err := db.InsertOne(ctx, models.SpecificationAttributeCollection, models.SpecificationAttribute{
		Name: "Memory",
		SpecificationAttributeOptions: []models.SpecificationAttributeOption{
			{ID: primitive.NewObjectID().Hex(), Name: "4 GB"},
			{ID: optionID, Name: "8 GB"},
		},
	})
	require.NoError(t, err)

	attrID, optID, err := inst.specificationOption(ctx, "Memory", "8 GB")
	require.NoError(t, err)
	assert.NotEmpty(t, attrID)
	assert.Equal(t, optionID, optID)

	_, _, err = inst.specificationOption(ctx, "Memory", "64 GB")
	require.Error(t, err)
}

func TestSaveSlug_GeneratesAndDeduplicates(t *testing.T) {
	db := memory.New()
	ctx := context.Background()
	inst := &Installer{db: db}

	first, err := db.InsertOne(ctx, models.CategoryCollection, models.Category{Name: "Test Category"})
	require.NoError(t, err)
	second, err := db.InsertOne(ctx, models.CategoryCollection, models.Category{Name: "Test Category"})
	require.NoError(t, err)

	slug1, err := inst.saveSlug(ctx, models.CategoryCollection, first, "Category", "Test Category")
	require.NoError(t, err)
	assert.Equal(t, "test-category", slug1)

	slug2, err := inst.saveSlug(ctx, models.CategoryCollection, second, "Category", "Test Category")
	require.NoError(t, err)
	assert.Equal(t, "test-category-2", slug2)

	// slug is written back onto the entity
	var cat models.Category
	require.NoError(t, db.FindOne(ctx, models.CategoryCollection, bson.M{"_id": second}, &cat))
	assert.Equal(t, "test-category-2", cat.SeName)

	// and each slug has its lookup record
	n, err := db.Count(ctx, models.EntityUrlCollection, bson.M{"entityName": "Category"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
