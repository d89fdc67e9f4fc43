package installer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/grandnode/grandnode2-sub005/internal/assets"
	"github.com/grandnode/grandnode2-sub005/internal/models"
	"github.com/grandnode/grandnode2-sub005/internal/seo"
	"github.com/grandnode/grandnode2-sub005/internal/store"
)

// placeholderPNG is a 1x1 transparent PNG used when no sample image
// directory is configured.
var placeholderPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x62, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// insertSamplePicture performs the first half of the asset two-step: the
// picture is committed and its generated id handed back for the entity to
// reference.
func (i *Installer) insertSamplePicture(ctx context.Context, name, reference string) (*models.Picture, error) {
	data := placeholderPNG
	if i.opts.SampleImagesDir != "" {
		fileName := seo.GenerateSlug(name) + ".jpeg"
		var err error
		data, err = assets.ReadSampleFile(i.opts.SampleImagesDir, fileName)
		if err != nil {
			return nil, err
		}
		return i.pictures.InsertPicture(ctx, data, "image/jpeg", seo.GenerateSlug(name), reference, "")
	}
	return i.pictures.InsertPicture(ctx, data, "image/png", seo.GenerateSlug(name), reference, "")
}

type productSeed struct {
	name         string
	shortDesc    string
	fullDesc     string
	sku          string
	price        float64
	oldPrice     float64
	brand        string
	taxCategory  string
	deliveryDate string
	categories   []string
	stock        int
	weight       float64
	showOnHome   bool
	markAsNew    bool
	specs        []specSeed
	attributes   []attributeSeed
	tags         []string
	withReview   bool
}

type specSeed struct {
	attribute string
	option    string
}

type attributeSeed struct {
	name   string
	values []string
}

func (i *Installer) installProducts(ctx context.Context) error {
	productLayoutID, err := i.layoutID(ctx, models.ProductLayoutCollection, "Simple product")
	if err != nil {
		return err
	}
	groupedLayoutID, err := i.layoutID(ctx, models.ProductLayoutCollection, "Grouped product (with variants)")
	if err != nil {
		return err
	}

	seeds := []productSeed{
		{
			name: "Build your own computer", shortDesc: "Build it", sku: "COMP_CUST",
			fullDesc:    "<p>Fight back against cluttered workspaces with the stylish IBM zBC12 All-in-One desktop PC.</p>",
			price:       1200, brand: "HP", taxCategory: "Electronics & Software", deliveryDate: "1-2 days",
			categories:  []string{"Desktops"}, stock: 10000, weight: 2, showOnHome: true,
			attributes: []attributeSeed{
				{name: "Processor", values: []string{"2.2 GHz Intel Pentium Dual-Core E2200", "2.5 GHz Intel Pentium Dual-Core E2200"}},
				{name: "RAM", values: []string{"2 GB", "4GB", "8GB"}},
				{name: "HDD", values: []string{"320 GB", "400 GB"}},
				{name: "OS", values: []string{"Vista Home", "Vista Premium"}},
			},
			tags: []string{"awesome", "computer"}, withReview: true,
		},
		{
			name: "Digital Storm VANQUISH Custom Performance PC", shortDesc: "Digital Storm VANQUISH 3 Desktop PC", sku: "DS_VA3_PC",
			fullDesc:   "<p>Blazing fast performance gaming desktop.</p>",
			price:      1259, brand: "HP", taxCategory: "Electronics & Software", deliveryDate: "3-5 days",
			categories: []string{"Desktops"}, stock: 10000, weight: 7,
			tags:       []string{"computer", "cool"}, withReview: true,
		},
		{
			name: "Apple MacBook Pro", shortDesc: "A groundbreaking Retina display.", sku: "AP_MBP_13",
			fullDesc:   "<p>The fastest and most-connected MacBook Pro ever.</p>",
			price:      1800, brand: "Apple", taxCategory: "Electronics & Software", deliveryDate: "1-2 days",
			categories: []string{"Notebooks"}, stock: 1000, weight: 3, showOnHome: true, markAsNew: true,
			specs: []specSeed{
				{attribute: "Screensize", option: "13.0''"},
				{attribute: "CPU Type", option: "Intel Core i5"},
				{attribute: "Memory", option: "4 GB"},
			},
			tags: []string{"compact", "awesome", "computer"}, withReview: true,
		},
		{
			name: "Asus Laptop", shortDesc: "Core i5 laptop with 15.6'' screen", sku: "AS_551_LP",
			fullDesc:   "<p>Commanding performance in a compact package.</p>",
			price:      1500, brand: "HP", taxCategory: "Electronics & Software", deliveryDate: "3-5 days",
			categories: []string{"Notebooks"}, stock: 1000, weight: 7, markAsNew: true,
			specs: []specSeed{
				{attribute: "Screensize", option: "15.6''"},
				{attribute: "CPU Type", option: "Intel Core i5"},
				{attribute: "Memory", option: "8 GB"},
				{attribute: "Hard drive", option: "500 GB"},
			},
			tags: []string{"compact", "computer"}, withReview: true,
		},
		{
			name: "Nike Floral Roshe Customized Running Shoes", shortDesc: "Women's Running Shoes", sku: "N_FR_RS",
			fullDesc:   "<p>When you ran across these shoes, you will immediately fall in love.</p>",
			price:      40, brand: "Nike", taxCategory: "Apparel", deliveryDate: "1-2 days",
			categories: []string{"Shoes"}, stock: 500, weight: 2,
			attributes: []attributeSeed{
				{name: "Size", values: []string{"8", "9", "10", "11"}},
				{name: "Color", values: []string{"White/Blue", "White/Black"}},
			},
			tags: []string{"cool", "shoes", "apparel"}, withReview: true,
		},
		{
			name: "Oversized Women T-Shirt", shortDesc: "An oversized women t-shirt", sku: "WM_TSH_OV",
			fullDesc:   "<p>This oversized women t-shirt needs minimum ironing.</p>",
			price:      24, oldPrice: 30, brand: "Nike", taxCategory: "Apparel", deliveryDate: "1-2 days",
			categories: []string{"Clothing"}, stock: 2000, weight: 1,
			attributes: []attributeSeed{{name: "Size", values: []string{"S", "M", "L", "XL"}}},
			tags:       []string{"cool", "apparel"}, withReview: true,
		},
		{
			name: "First Prize Pies Apple Pie", shortDesc: "A classic apple pie", sku: "FP_APPLE_PIE",
			fullDesc:   "<p>A mouth-watering apple pie.</p>",
			price:      12, taxCategory: "Books", deliveryDate: "1-2 days",
			categories: []string{"Books"}, stock: 300, weight: 1,
			tags:       []string{"book"},
		},
		{
			name: "Fahrenheit 451 by Ray Bradbury", shortDesc: "A novel about a dystopian future", sku: "FR_451_RB",
			fullDesc:   "<p>Fahrenheit 451 is a dystopian novel by Ray Bradbury published in 1953.</p>",
			price:      27, oldPrice: 30, taxCategory: "Books", deliveryDate: "1-2 days",
			categories: []string{"Books"}, stock: 700, weight: 1,
			tags:       []string{"awesome", "book"},
		},
	}

	for _, seed := range seeds {
		if _, err := i.insertProduct(ctx, seed, productLayoutID); err != nil {
			return err
		}
	}

	if err := i.installDownloadableProduct(ctx, productLayoutID); err != nil {
		return err
	}
	if err := i.wireRelatedProducts(ctx); err != nil {
		return err
	}
	if err := i.installGroupedProduct(ctx, groupedLayoutID); err != nil {
		return err
	}
	if err := i.installBundledProduct(ctx, productLayoutID); err != nil {
		return err
	}
	return nil
}

func (i *Installer) insertProduct(ctx context.Context, seed productSeed, layoutID string) (string, error) {
	product := models.Product{
		ProductTypeId:           models.ProductTypeSimple,
		VisibleIndividually:     true,
		Name:                    seed.name,
		ShortDescription:        seed.shortDesc,
		FullDescription:         seed.fullDesc,
		ProductLayoutId:         layoutID,
		ShowOnHomePage:          seed.showOnHome,
		AllowCustomerReviews:    true,
		Sku:                     seed.sku,
		IsShipEnabled:           true,
		ManageInventoryMethodId: 1,
		StockQuantity:           seed.stock,
		OrderMinimumQuantity:    1,
		OrderMaximumQuantity:    10000,
		Price:                   seed.price,
		OldPrice:                seed.oldPrice,
		Weight:                  seed.weight,
		Published:               true,
		MarkAsNew:               seed.markAsNew,
		CreatedOnUtc:            time.Now().UTC(),
		UpdatedOnUtc:            time.Now().UTC(),
	}

	// Foundation lookups: every reference is resolved by natural key
	// against data committed by earlier steps.
	var err error
	product.TaxCategoryId, err = i.taxCategoryID(ctx, seed.taxCategory)
	if err != nil {
		return "", err
	}
	if seed.brand != "" {
		product.BrandId, err = i.brandID(ctx, seed.brand)
		if err != nil {
			return "", err
		}
	}
	if seed.deliveryDate != "" {
		product.DeliveryDateId, err = i.deliveryDateID(ctx, seed.deliveryDate)
		if err != nil {
			return "", err
		}
	}
	for order, categoryName := range seed.categories {
		category, err := i.categoryByName(ctx, categoryName)
		if err != nil {
			return "", err
		}
		product.ProductCategories = append(product.ProductCategories, models.ProductCategory{
			CategoryId: category.ID, DisplayOrder: order,
		})
	}
	for order, spec := range seed.specs {
		attrID, optionID, err := i.specificationOption(ctx, spec.attribute, spec.option)
		if err != nil {
			return "", err
		}
		product.ProductSpecifications = append(product.ProductSpecifications, models.ProductSpecificationAttribute{
			SpecificationAttributeId:       attrID,
			SpecificationAttributeOptionId: optionID,
			AllowFiltering:                 true,
			ShowOnProductPage:              true,
			DisplayOrder:                   order,
		})
	}
	for _, attr := range seed.attributes {
		attrID, err := i.productAttributeID(ctx, attr.name)
		if err != nil {
			return "", err
		}
		mapping := models.ProductAttributeMapping{
			ProductAttributeId:     attrID,
			IsRequired:             true,
			AttributeControlTypeId: 1,
		}
		for order, value := range attr.values {
			mapping.ProductAttributeValues = append(mapping.ProductAttributeValues, models.ProductAttributeValue{
				Name: value, DisplayOrder: order, IsPreSelected: order == 0,
			})
		}
		product.ProductAttributeMappings = append(product.ProductAttributeMappings, mapping)
	}

	// Asset two-step: picture first, then the product referencing its id.
	picture, err := i.insertSamplePicture(ctx, seed.name, "Product")
	if err != nil {
		return "", err
	}
	product.ProductPictures = []models.ProductPicture{{PictureId: picture.ID, DisplayOrder: 1}}

	id, err := i.db.InsertOne(ctx, models.ProductCollection, product)
	if err != nil {
		return "", fmt.Errorf("failed to insert product %s: %w", seed.name, err)
	}

	if _, err := i.saveSlug(ctx, models.ProductCollection, id, "Product", seed.name); err != nil {
		return "", err
	}
	if err := i.attachTags(ctx, id, seed.tags); err != nil {
		return "", err
	}
	if seed.withReview {
		if err := i.maybeInsertReview(ctx, id, seed.name); err != nil {
			return "", err
		}
	}
	return id, nil
}

// attachTags looks up or creates each tag by name, bumps its usage counter,
// and records the tag names on the product.
func (i *Installer) attachTags(ctx context.Context, productID string, tags []string) error {
	if len(tags) == 0 {
		return nil
	}

	for _, name := range tags {
		var tag models.ProductTag
		err := i.db.FindOne(ctx, models.ProductTagCollection, bson.M{"name": name}, &tag)
		switch {
		case err == nil:
			if err := i.db.UpdateByID(ctx, models.ProductTagCollection, tag.ID, bson.M{"count": tag.Count + 1}); err != nil {
				return err
			}
		case errors.Is(err, store.ErrNotFound):
			tag = models.ProductTag{Name: name, SeName: seo.GenerateSlug(name), Count: 1}
			if _, err := i.db.InsertOne(ctx, models.ProductTagCollection, tag); err != nil {
				return fmt.Errorf("failed to insert product tag %s: %w", name, err)
			}
		default:
			return err
		}
	}

	return i.db.UpdateByID(ctx, models.ProductCollection, productID, bson.M{"productTags": tags})
}

// maybeInsertReview seeds a synthetic review for a subset of products. The
// skip probability and rating bounds come from configuration; the rating
// totals on the product are denormalized aggregates, not recomputed joins.
func (i *Installer) maybeInsertReview(ctx context.Context, productID, productName string) error {
	if i.rnd.Intn(i.cfg.SampleData.ReviewSkipModulus) == i.cfg.SampleData.ReviewSkipModulus-1 {
		return nil
	}

	minR, maxR := i.cfg.SampleData.ReviewMinRating, i.cfg.SampleData.ReviewMaxRating
	rating := minR + i.rnd.Intn(maxR-minR+1)

	review := models.ProductReview{
		ProductId:    productID,
		CustomerId:   i.adminCustomerID,
		Title:        "Some sample review",
		ReviewText:   fmt.Sprintf("This sample review is for the %s. I've been waiting for this product to be available. It is priced just right.", productName),
		Rating:       rating,
		IsApproved:   true,
		CreatedOnUtc: time.Now().UTC(),
	}
	if _, err := i.db.InsertOne(ctx, models.ProductReviewCollection, review); err != nil {
		return fmt.Errorf("failed to insert review for %s: %w", productName, err)
	}

	return i.db.UpdateByID(ctx, models.ProductCollection, productID, bson.M{
		"approvedRatingSum":    rating,
		"approvedTotalReviews": 1,
	})
}

// installDownloadableProduct seeds a digital album: the download record is
// committed first, then the product referencing it. Nothing ships.
func (i *Installer) installDownloadableProduct(ctx context.Context, layoutID string) error {
	taxID, err := i.taxCategoryID(ctx, "Downloadable Products")
	if err != nil {
		return err
	}
	category, err := i.categoryByName(ctx, "Digital downloads")
	if err != nil {
		return err
	}

	downloadID, err := i.downloads.InsertDownload(ctx, &models.Download{
		DownloadBinary: placeholderPNG,
		ContentType:    "application/x-zip-co",
		Filename:       "night-visions",
		Extension:      ".zip",
	})
	if err != nil {
		return fmt.Errorf("failed to insert sample download: %w", err)
	}

	product := models.Product{
		ProductTypeId:        models.ProductTypeSimple,
		VisibleIndividually:  true,
		Name:                 "Night Visions",
		ShortDescription:     "Night Visions is the debut studio album by American rock band Imagine Dragons.",
		FullDescription:      "<p>Released on September 4, 2012 through Interscope Records.</p>",
		ProductLayoutId:      layoutID,
		AllowCustomerReviews: true,
		Sku:                  "NIGHT_VSN",
		IsDownload:           true,
		DownloadId:           downloadID,
		TaxCategoryId:        taxID,
		StockQuantity:        10000,
		OrderMinimumQuantity: 1,
		OrderMaximumQuantity: 10000,
		Price:                2.8,
		Published:            true,
		CreatedOnUtc:         time.Now().UTC(),
		UpdatedOnUtc:         time.Now().UTC(),
		ProductCategories:    []models.ProductCategory{{CategoryId: category.ID, DisplayOrder: 1}},
	}

	id, err := i.db.InsertOne(ctx, models.ProductCollection, product)
	if err != nil {
		return fmt.Errorf("failed to insert downloadable product: %w", err)
	}
	if _, err := i.saveSlug(ctx, models.ProductCollection, id, "Product", product.Name); err != nil {
		return err
	}
	return i.attachTags(ctx, id, []string{"awesome", "digital"})
}

// wireRelatedProducts stores both directions of every relation as separate
// records. The symmetry is written out explicitly, not derived: A->B and
// B->A are two independent updates.
func (i *Installer) wireRelatedProducts(ctx context.Context) error {
	pairs := [][2]string{
		{"Build your own computer", "Digital Storm VANQUISH Custom Performance PC"},
		{"Apple MacBook Pro", "Asus Laptop"},
		{"Nike Floral Roshe Customized Running Shoes", "Oversized Women T-Shirt"},
	}

	for _, pair := range pairs {
		a, err := i.productByName(ctx, pair[0])
		if err != nil {
			return err
		}
		b, err := i.productByName(ctx, pair[1])
		if err != nil {
			return err
		}

		if err := i.addRelated(ctx, a, b.ID); err != nil {
			return err
		}
		if err := i.addRelated(ctx, b, a.ID); err != nil {
			return err
		}
	}
	return nil
}

func (i *Installer) addRelated(ctx context.Context, product *models.Product, relatedID string) error {
	related := append(product.RelatedProducts, models.RelatedProduct{
		ProductId2:   relatedID,
		DisplayOrder: len(product.RelatedProducts) + 1,
	})
	return i.db.UpdateByID(ctx, models.ProductCollection, product.ID, bson.M{"relatedProducts": related})
}

// installGroupedProduct inserts the grouped parent first, then children
// that carry the parent's generated id and are hidden from listings.
func (i *Installer) installGroupedProduct(ctx context.Context, groupedLayoutID string) error {
	taxID, err := i.taxCategoryID(ctx, "Electronics & Software")
	if err != nil {
		return err
	}
	category, err := i.categoryByName(ctx, "Camera & photo")
	if err != nil {
		return err
	}

	parent := models.Product{
		ProductTypeId:        models.ProductTypeGrouped,
		VisibleIndividually:  true,
		Name:                 "Nikon D5500 DSLR",
		ShortDescription:     "Slim, lightweight Nikon D5500 packed with features",
		FullDescription:      "<p>An unbeatable combination of high image quality and compact size.</p>",
		ProductLayoutId:      groupedLayoutID,
		AllowCustomerReviews: true,
		Sku:                  "N5500DS_0",
		TaxCategoryId:        taxID,
		IsShipEnabled:        true,
		StockQuantity:        10000,
		OrderMinimumQuantity: 1,
		OrderMaximumQuantity: 10000,
		Price:                670,
		Published:            true,
		CreatedOnUtc:         time.Now().UTC(),
		UpdatedOnUtc:         time.Now().UTC(),
		ProductCategories:    []models.ProductCategory{{CategoryId: category.ID, DisplayOrder: 1}},
	}

	parentID, err := i.db.InsertOne(ctx, models.ProductCollection, parent)
	if err != nil {
		return fmt.Errorf("failed to insert grouped product: %w", err)
	}
	if _, err := i.saveSlug(ctx, models.ProductCollection, parentID, "Product", parent.Name); err != nil {
		return err
	}

	children := []models.Product{
		{Name: "Nikon D5500 DSLR - Black", Sku: "N5500DS_B", Price: 670},
		{Name: "Nikon D5500 DSLR - Red", Sku: "N5500DS_R", Price: 630},
	}
	for _, child := range children {
		child.ProductTypeId = models.ProductTypeSimple
		child.ParentGroupedProductId = parentID
		child.VisibleIndividually = false
		child.ProductLayoutId = groupedLayoutID
		child.TaxCategoryId = taxID
		child.IsShipEnabled = true
		child.StockQuantity = 10000
		child.OrderMinimumQuantity = 1
		child.OrderMaximumQuantity = 10000
		child.Published = true
		child.CreatedOnUtc = time.Now().UTC()
		child.UpdatedOnUtc = time.Now().UTC()

		childID, err := i.db.InsertOne(ctx, models.ProductCollection, child)
		if err != nil {
			return fmt.Errorf("failed to insert grouped child %s: %w", child.Name, err)
		}
		if _, err := i.saveSlug(ctx, models.ProductCollection, childID, "Product", child.Name); err != nil {
			return err
		}
	}
	return nil
}

// installBundledProduct inserts the bundle parent, the bundled children,
// and only then attaches the (child, quantity, order) tuples to the parent.
func (i *Installer) installBundledProduct(ctx context.Context, layoutID string) error {
	taxID, err := i.taxCategoryID(ctx, "Electronics & Software")
	if err != nil {
		return err
	}
	category, err := i.categoryByName(ctx, "Cell phones")
	if err != nil {
		return err
	}

	parent := models.Product{
		ProductTypeId:        models.ProductTypeBundled,
		VisibleIndividually:  true,
		Name:                 "Smartphone Starter Kit",
		ShortDescription:     "Phone, charger and case in one box",
		FullDescription:      "<p>Everything needed to get going with a new phone.</p>",
		ProductLayoutId:      layoutID,
		AllowCustomerReviews: true,
		Sku:                  "PH_KIT_1",
		TaxCategoryId:        taxID,
		IsShipEnabled:        true,
		StockQuantity:        5000,
		OrderMinimumQuantity: 1,
		OrderMaximumQuantity: 100,
		Price:                299,
		Published:            true,
		CreatedOnUtc:         time.Now().UTC(),
		UpdatedOnUtc:         time.Now().UTC(),
		ProductCategories:    []models.ProductCategory{{CategoryId: category.ID, DisplayOrder: 1}},
	}

	parentID, err := i.db.InsertOne(ctx, models.ProductCollection, parent)
	if err != nil {
		return fmt.Errorf("failed to insert bundled product: %w", err)
	}
	if _, err := i.saveSlug(ctx, models.ProductCollection, parentID, "Product", parent.Name); err != nil {
		return err
	}

	children := []struct {
		name     string
		sku      string
		price    float64
		quantity int
	}{
		{"Basic Smartphone", "PH_BASIC", 249, 1},
		{"Wall Charger", "PH_CHRG", 19, 1},
		{"Phone Case", "PH_CASE", 15, 2},
	}

	bundle := make([]models.BundleProduct, 0, len(children))
	for order, c := range children {
		child := models.Product{
			ProductTypeId:        models.ProductTypeSimple,
			VisibleIndividually:  false,
			Name:                 c.name,
			Sku:                  c.sku,
			Price:                c.price,
			ProductLayoutId:      layoutID,
			TaxCategoryId:        taxID,
			IsShipEnabled:        true,
			StockQuantity:        10000,
			OrderMinimumQuantity: 1,
			OrderMaximumQuantity: 10000,
			Published:            true,
			CreatedOnUtc:         time.Now().UTC(),
			UpdatedOnUtc:         time.Now().UTC(),
		}
		childID, err := i.db.InsertOne(ctx, models.ProductCollection, child)
		if err != nil {
			return fmt.Errorf("failed to insert bundle child %s: %w", c.name, err)
		}
		if _, err := i.saveSlug(ctx, models.ProductCollection, childID, "Product", c.name); err != nil {
			return err
		}
		bundle = append(bundle, models.BundleProduct{ProductId: childID, Quantity: c.quantity, DisplayOrder: order + 1})
	}

	// Relink phase: children exist, now the parent learns its bundle list.
	return i.db.UpdateByID(ctx, models.ProductCollection, parentID, bson.M{"bundleProducts": bundle})
}
