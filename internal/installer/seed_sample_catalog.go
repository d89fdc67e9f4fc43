package installer

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/grandnode/grandnode2-sub005/internal/models"
)

func (i *Installer) installCheckoutAttributes(ctx context.Context) error {
	attribute := models.CheckoutAttribute{
		Name:                   "Gift wrapping",
		IsRequired:             true,
		AttributeControlTypeId: 1, // dropdown
		DisplayOrder:           1,
		CheckoutAttributeValues: []models.CheckoutAttributeValue{
			{ID: primitive.NewObjectID().Hex(), Name: "No", PriceAdjustment: 0, DisplayOrder: 1, IsPreSelected: true},
			{ID: primitive.NewObjectID().Hex(), Name: "Yes (+$10)", PriceAdjustment: 10, DisplayOrder: 2},
		},
	}
	_, err := i.db.InsertOne(ctx, models.CheckoutAttributeCollection, attribute)
	return err
}

func (i *Installer) installSpecificationAttributes(ctx context.Context) error {
	attributes := []models.SpecificationAttribute{
		{
			Name: "Screensize", SeName: "screensize", DisplayOrder: 1,
			SpecificationAttributeOptions: []models.SpecificationAttributeOption{
				{ID: primitive.NewObjectID().Hex(), Name: "13.0''", DisplayOrder: 2},
				{ID: primitive.NewObjectID().Hex(), Name: "13.3''", DisplayOrder: 3},
				{ID: primitive.NewObjectID().Hex(), Name: "14.0''", DisplayOrder: 4},
				{ID: primitive.NewObjectID().Hex(), Name: "15.0''", DisplayOrder: 5},
				{ID: primitive.NewObjectID().Hex(), Name: "15.6''", DisplayOrder: 6},
			},
		},
		{
			Name: "CPU Type", SeName: "cpu-type", DisplayOrder: 2,
			SpecificationAttributeOptions: []models.SpecificationAttributeOption{
				{ID: primitive.NewObjectID().Hex(), Name: "Intel Core i5", DisplayOrder: 1},
				{ID: primitive.NewObjectID().Hex(), Name: "Intel Core i7", DisplayOrder: 2},
			},
		},
		{
			Name: "Memory", SeName: "memory", DisplayOrder: 3,
			SpecificationAttributeOptions: []models.SpecificationAttributeOption{
				{ID: primitive.NewObjectID().Hex(), Name: "4 GB", DisplayOrder: 1},
				{ID: primitive.NewObjectID().Hex(), Name: "8 GB", DisplayOrder: 2},
				{ID: primitive.NewObjectID().Hex(), Name: "16 GB", DisplayOrder: 3},
			},
		},
		{
			Name: "Hard drive", SeName: "hard-drive", DisplayOrder: 5,
			SpecificationAttributeOptions: []models.SpecificationAttributeOption{
				{ID: primitive.NewObjectID().Hex(), Name: "128 GB", DisplayOrder: 7},
				{ID: primitive.NewObjectID().Hex(), Name: "500 GB", DisplayOrder: 4},
				{ID: primitive.NewObjectID().Hex(), Name: "1 TB", DisplayOrder: 3},
			},
		},
		{
			Name: "Color", SeName: "color", DisplayOrder: 1,
			SpecificationAttributeOptions: []models.SpecificationAttributeOption{
				{ID: primitive.NewObjectID().Hex(), Name: "Grey", DisplayOrder: 2},
				{ID: primitive.NewObjectID().Hex(), Name: "Red", DisplayOrder: 3},
				{ID: primitive.NewObjectID().Hex(), Name: "Blue", DisplayOrder: 4},
			},
		},
	}

	docs := make([]interface{}, 0, len(attributes))
	for _, a := range attributes {
		docs = append(docs, a)
	}
	_, err := i.db.InsertMany(ctx, models.SpecificationAttributeCollection, docs)
	return err
}

func (i *Installer) installProductAttributes(ctx context.Context) error {
	attributes := []interface{}{
		models.ProductAttribute{Name: "Color", SeName: "color"},
		models.ProductAttribute{Name: "Custom Text", SeName: "custom-text"},
		models.ProductAttribute{Name: "HDD", SeName: "hdd"},
		models.ProductAttribute{Name: "OS", SeName: "os"},
		models.ProductAttribute{Name: "Processor", SeName: "processor"},
		models.ProductAttribute{Name: "RAM", SeName: "ram"},
		models.ProductAttribute{Name: "Size", SeName: "size"},
		models.ProductAttribute{Name: "Software", SeName: "software"},
	}
	_, err := i.db.InsertMany(ctx, models.ProductAttributeCollection, attributes)
	return err
}

type categorySeed struct {
	name           string
	description    string
	parent         string // parent category name, resolved after parents exist
	layout         string
	pageSize       int
	includeInMenu  bool
	showOnHomePage bool
	displayOrder   int
}

// installCategories inserts parents first, then children that resolve their
// parent by name. Each insert is followed by the slug phase.
func (i *Installer) installCategories(ctx context.Context) error {
	roots := []categorySeed{
		{name: "Computers", layout: "Grid or Lines", pageSize: 6, includeInMenu: true, displayOrder: 1},
		{name: "Electronics", layout: "Grid or Lines", pageSize: 6, includeInMenu: true, showOnHomePage: true, displayOrder: 2},
		{name: "Apparel", layout: "Grid or Lines", pageSize: 6, includeInMenu: true, showOnHomePage: true, displayOrder: 3},
		{name: "Digital downloads", layout: "Products in Grid or Lines", pageSize: 6, includeInMenu: true, displayOrder: 4},
		{name: "Books", description: "<p>Books from our partners</p>", layout: "Products in Grid or Lines", pageSize: 6, includeInMenu: true, displayOrder: 5},
		{name: "Jewelry", layout: "Products in Grid or Lines", pageSize: 6, includeInMenu: true, displayOrder: 6},
	}
	children := []categorySeed{
		{name: "Desktops", parent: "Computers", layout: "Products in Grid or Lines", pageSize: 6, displayOrder: 1},
		{name: "Notebooks", parent: "Computers", layout: "Products in Grid or Lines", pageSize: 6, displayOrder: 2},
		{name: "Software", parent: "Computers", layout: "Products in Grid or Lines", pageSize: 6, displayOrder: 3},
		{name: "Camera & photo", parent: "Electronics", layout: "Products in Grid or Lines", pageSize: 6, displayOrder: 1},
		{name: "Cell phones", parent: "Electronics", layout: "Products in Grid or Lines", pageSize: 6, displayOrder: 2},
		{name: "Shoes", parent: "Apparel", layout: "Products in Grid or Lines", pageSize: 6, displayOrder: 1},
		{name: "Clothing", parent: "Apparel", layout: "Products in Grid or Lines", pageSize: 6, displayOrder: 2},
	}

	for _, seed := range roots {
		if err := i.insertCategory(ctx, seed, ""); err != nil {
			return err
		}
	}
	for _, seed := range children {
		parent, err := i.categoryByName(ctx, seed.parent)
		if err != nil {
			return err
		}
		if err := i.insertCategory(ctx, seed, parent.ID); err != nil {
			return err
		}
	}
	return nil
}

func (i *Installer) insertCategory(ctx context.Context, seed categorySeed, parentID string) error {
	layoutID, err := i.layoutID(ctx, models.CategoryLayoutCollection, seed.layout)
	if err != nil {
		return err
	}

	// Asset first: the picture id must exist before the category document
	// referencing it.
	picture, err := i.insertSamplePicture(ctx, seed.name, "Category")
	if err != nil {
		return err
	}

	category := models.Category{
		Name:             seed.name,
		Description:      seed.description,
		CategoryLayoutId: layoutID,
		ParentCategoryId: parentID,
		PictureId:        picture.ID,
		PageSize:         seed.pageSize,
		IncludeInMenu:    seed.includeInMenu,
		ShowOnHomePage:   seed.showOnHomePage,
		Published:        true,
		DisplayOrder:     seed.displayOrder,
		CreatedOnUtc:     time.Now().UTC(),
	}

	id, err := i.db.InsertOne(ctx, models.CategoryCollection, category)
	if err != nil {
		return fmt.Errorf("failed to insert category %s: %w", seed.name, err)
	}
	if _, err := i.saveSlug(ctx, models.CategoryCollection, id, "Category", seed.name); err != nil {
		return err
	}
	return nil
}

func (i *Installer) installBrands(ctx context.Context) error {
	layoutID, err := i.layoutID(ctx, models.BrandLayoutCollection, "Products in Grid or Lines")
	if err != nil {
		return err
	}

	brands := []struct {
		name         string
		displayOrder int
	}{
		{"Apple", 1},
		{"HP", 5},
		{"Nike", 5},
	}

	for _, b := range brands {
		picture, err := i.insertSamplePicture(ctx, b.name, "Brand")
		if err != nil {
			return err
		}

		brand := models.Brand{
			Name:          b.name,
			BrandLayoutId: layoutID,
			PictureId:     picture.ID,
			PageSize:      6,
			Published:     true,
			DisplayOrder:  b.displayOrder,
			CreatedOnUtc:  time.Now().UTC(),
		}
		id, err := i.db.InsertOne(ctx, models.BrandCollection, brand)
		if err != nil {
			return fmt.Errorf("failed to insert brand %s: %w", b.name, err)
		}
		if _, err := i.saveSlug(ctx, models.BrandCollection, id, "Brand", b.name); err != nil {
			return err
		}
	}
	return nil
}
