package installer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/grandnode/grandnode2-sub005/internal/models"
	"github.com/grandnode/grandnode2-sub005/internal/store"
)

// collections is every collection the installer provisions. Ordering is
// cosmetic; collection creation has no dependencies.
var collections = []string{
	models.VersionCollection,
	models.StoreCollection,
	models.SettingCollection,
	models.AdminMenuCollection,
	models.PermissionCollection,
	models.EntityUrlCollection,
	models.TranslationResourceCollection,
	models.ActivityLogTypeCollection,
	models.ScheduledTaskCollection,
	models.CountryCollection,
	models.CurrencyCollection,
	models.LanguageCollection,
	models.MeasureDimensionCollection,
	models.MeasureWeightCollection,
	models.MeasureUnitCollection,
	models.ShippingMethodCollection,
	models.DeliveryDateCollection,
	models.CustomerCollection,
	models.CustomerGroupCollection,
	models.CustomerActionTypeCollection,
	models.EmailAccountCollection,
	models.MessageTemplateCollection,
	models.PageCollection,
	models.PageLayoutCollection,
	models.BlogPostCollection,
	models.NewsItemCollection,
	models.PictureCollection,
	models.DownloadCollection,
	models.TaxCategoryCollection,
	models.CategoryLayoutCollection,
	models.ProductLayoutCollection,
	models.BrandLayoutCollection,
	models.CollectionLayoutCollection,
	models.CheckoutAttributeCollection,
	models.SpecificationAttributeCollection,
	models.ProductAttributeCollection,
	models.CategoryCollection,
	models.BrandCollection,
	models.ProductCollection,
	models.ProductTagCollection,
	models.ProductReviewCollection,
	models.DiscountCollection,
	models.WarehouseCollection,
	models.PickupPointCollection,
	models.VendorCollection,
	models.AffiliateCollection,
	models.OrderTagCollection,
	models.OrderStatusCollection,
	models.MerchandiseReturnReasonCollection,
	models.MerchandiseReturnActionCollection,

	// Runtime collections: no seed data, but their collections and index
	// guards must exist before the storefront first writes to them.
	models.OrderCollection,
	models.ShipmentCollection,
	models.MerchandiseReturnCollection,
	models.UserApiCollection,
	models.ActivityLogCollection,
	models.CampaignHistoryCollection,
	models.SearchTermCollection,
}

func asc(fields ...string) []store.IndexKey {
	keys := make([]store.IndexKey, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, store.IndexKey{Field: f})
	}
	return keys
}

func desc(field string) store.IndexKey {
	return store.IndexKey{Field: field, Desc: true}
}

// indexCatalog declares every index the storefront's access patterns need.
// Unique entries are correctness constraints, not just performance: building
// one over violating data must fail the install.
var indexCatalog = map[string][]store.IndexSpec{
	models.VersionCollection: {
		{Name: "DataBaseVersion", Unique: true, Keys: asc("dataBaseVersion")},
	},
	models.EntityUrlCollection: {
		{Name: "Slug", Unique: true, Keys: asc("slug")},
		{Name: "EntityId_EntityName", Keys: asc("entityId", "entityName")},
	},
	models.PermissionCollection: {
		{Name: "SystemName", Unique: true, Keys: asc("systemName")},
	},
	models.DiscountCollection: {
		{Name: "CouponCode", Unique: true, Keys: asc("couponCode")},
	},
	models.CustomerCollection: {
		{Name: "Email", Unique: true, Keys: asc("email")},
		{Name: "CreatedOnUtc", Keys: []store.IndexKey{desc("createdOnUtc")}},
	},
	models.EmailAccountCollection: {
		{Name: "Email", Unique: true, Keys: asc("email")},
	},
	models.TaxCategoryCollection: {
		{Name: "Name", Keys: asc("name")},
	},
	models.CategoryLayoutCollection: {
		{Name: "Name", Keys: asc("name")},
	},
	models.ProductLayoutCollection: {
		{Name: "Name", Keys: asc("name")},
	},
	models.BrandLayoutCollection: {
		{Name: "Name", Keys: asc("name")},
	},
	models.CollectionLayoutCollection: {
		{Name: "Name", Keys: asc("name")},
	},
	models.PageLayoutCollection: {
		{Name: "Name", Keys: asc("name")},
	},
	models.BrandCollection: {
		{Name: "Name", Keys: asc("name")},
		{Name: "DisplayOrder", Keys: asc("displayOrder")},
	},
	models.ProductAttributeCollection: {
		{Name: "Name", Keys: asc("name")},
	},
	models.SpecificationAttributeCollection: {
		{Name: "Name", Keys: asc("name")},
	},
	models.ProductTagCollection: {
		{Name: "Name", Keys: asc("name")},
	},
	models.CategoryCollection: {
		{Name: "Name", Keys: asc("name")},
		{Name: "Parent_Published_Order", Keys: asc("parentCategoryId", "published", "displayOrder")},
		{Name: "ShowOnHomePage_Order", Keys: asc("showOnHomePage", "displayOrder")},
	},
	// One compound index per supported storefront sort order: the store
	// cannot combine arbitrary filters efficiently without a matching index.
	models.ProductCollection: {
		{Name: "Category_Published_Visible_Name", Keys: asc("productCategories.categoryId", "published", "visibleIndividually", "name")},
		{Name: "Category_Published_Visible_Price", Keys: asc("productCategories.categoryId", "published", "visibleIndividually", "price")},
		{Name: "Category_Published_Visible_Sold", Keys: []store.IndexKey{
			{Field: "productCategories.categoryId"}, {Field: "published"}, {Field: "visibleIndividually"}, desc("sold"),
		}},
		{Name: "Category_Featured", Keys: asc("productCategories.categoryId", "productCategories.isFeatured")},
		{Name: "Parent_Visible", Keys: asc("parentGroupedProductId", "visibleIndividually")},
		{Name: "ShowOnHomePage_Order", Keys: asc("showOnHomePage", "displayOrder")},
	},
	models.ProductReviewCollection: {
		{Name: "Product_CreatedOnUtc", Keys: []store.IndexKey{{Field: "productId"}, desc("createdOnUtc")}},
	},
	models.ActivityLogTypeCollection: {
		{Name: "SystemKeyword", Keys: asc("systemKeyword")},
	},
	models.BlogPostCollection: {
		{Name: "CreatedOnUtc", Keys: []store.IndexKey{desc("createdOnUtc")}},
	},
	models.NewsItemCollection: {
		{Name: "CreatedOnUtc", Keys: []store.IndexKey{desc("createdOnUtc")}},
	},
	models.TranslationResourceCollection: {
		{Name: "Language_Name", Keys: asc("languageId", "name")},
	},
	models.SettingCollection: {
		{Name: "Name", Keys: asc("name")},
	},
	models.CountryCollection: {
		{Name: "DisplayOrder_Name", Keys: asc("displayOrder", "name")},
	},
	models.ShipmentCollection: {
		{Name: "ShipmentNumber", Unique: true, Keys: asc("shipmentNumber")},
	},
	models.MerchandiseReturnCollection: {
		{Name: "ReturnNumber", Unique: true, Keys: asc("returnNumber")},
	},
	models.UserApiCollection: {
		{Name: "Email", Unique: true, Keys: asc("email")},
	},
	models.OrderCollection: {
		{Name: "CreatedOnUtc", Keys: []store.IndexKey{desc("createdOnUtc")}},
	},
	models.ActivityLogCollection: {
		{Name: "CreatedOnUtc", Keys: []store.IndexKey{desc("createdOnUtc")}},
	},
	models.CampaignHistoryCollection: {
		{Name: "CreatedDateUtc", Keys: []store.IndexKey{desc("createdDateUtc")}},
	},
	models.SearchTermCollection: {
		{Name: "CreatedOnUtc", Keys: []store.IndexKey{desc("createdOnUtc")}},
	},
}

func (i *Installer) createCollections(ctx context.Context) error {
	collation := &store.Collation{Locale: i.opts.Collation}
	for _, name := range collections {
		if err := i.db.CreateCollection(ctx, name, collation); err != nil {
			return err
		}
	}
	i.log.Info("collections provisioned", zap.Int("count", len(collections)))
	return nil
}

func (i *Installer) createIndexes(ctx context.Context) error {
	for collection, specs := range indexCatalog {
		if err := i.db.CreateIndexes(ctx, collection, specs); err != nil {
			return fmt.Errorf("index provisioning failed: %w", err)
		}
	}
	return nil
}

// installVersion stamps the installed data version. The unique index on
// dataBaseVersion makes a second stamp of the same version fail.
func (i *Installer) installVersion(ctx context.Context) error {
	version := models.DataVersion{
		DataBaseVersion: i.cfg.Install.Version,
		InstalledOnUtc:  time.Now().UTC(),
	}
	if _, err := i.db.InsertOne(ctx, models.VersionCollection, version); err != nil {
		return fmt.Errorf("failed to stamp data version: %w", err)
	}
	return nil
}
