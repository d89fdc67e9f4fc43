package installer

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/grandnode/grandnode2-sub005/internal/models"
)

func (i *Installer) installAdminMenu(ctx context.Context) error {
	menu := []models.AdminMenuItem{
		{SystemName: "Dashboard", ResourceName: "Admin.Dashboard", Url: "/admin", IconClass: "icon-home", DisplayOrder: 0},
		{SystemName: "Catalog", ResourceName: "Admin.Catalog", IconClass: "icon-basket", DisplayOrder: 1, ChildNodes: []models.AdminMenuItem{
			{SystemName: "Products", ResourceName: "Admin.Catalog.Products", PermissionNames: []string{"ManageProducts"}, Url: "/admin/product/list"},
			{SystemName: "Categories", ResourceName: "Admin.Catalog.Categories", PermissionNames: []string{"ManageCategories"}, Url: "/admin/category/list"},
			{SystemName: "Brands", ResourceName: "Admin.Catalog.Brands", PermissionNames: []string{"ManageBrands"}, Url: "/admin/brand/list"},
		}},
		{SystemName: "Sales", ResourceName: "Admin.Sales", IconClass: "icon-bag", DisplayOrder: 2, ChildNodes: []models.AdminMenuItem{
			{SystemName: "Orders", ResourceName: "Admin.Sales.Orders", PermissionNames: []string{"ManageOrders"}, Url: "/admin/order/list"},
			{SystemName: "MerchandiseReturns", ResourceName: "Admin.Sales.MerchandiseReturns", PermissionNames: []string{"ManageMerchandiseReturns"}, Url: "/admin/merchandisereturn/list"},
		}},
		{SystemName: "Customers", ResourceName: "Admin.Customers", IconClass: "icon-user", DisplayOrder: 3, ChildNodes: []models.AdminMenuItem{
			{SystemName: "CustomersList", ResourceName: "Admin.Customers.List", PermissionNames: []string{"ManageCustomers"}, Url: "/admin/customer/list"},
			{SystemName: "CustomerGroups", ResourceName: "Admin.Customers.Groups", PermissionNames: []string{"ManageCustomerGroups"}, Url: "/admin/customergroup/list"},
		}},
		{SystemName: "Content", ResourceName: "Admin.Content", IconClass: "icon-layers", DisplayOrder: 4, ChildNodes: []models.AdminMenuItem{
			{SystemName: "Pages", ResourceName: "Admin.Content.Pages", PermissionNames: []string{"ManagePages"}, Url: "/admin/page/list"},
			{SystemName: "MessageTemplates", ResourceName: "Admin.Content.MessageTemplates", PermissionNames: []string{"ManageMessageTemplates"}, Url: "/admin/messagetemplate/list"},
			{SystemName: "Blog", ResourceName: "Admin.Content.Blog", PermissionNames: []string{"ManageBlog"}, Url: "/admin/blog/list"},
			{SystemName: "News", ResourceName: "Admin.Content.News", PermissionNames: []string{"ManageNews"}, Url: "/admin/news/list"},
		}},
		{SystemName: "Configuration", ResourceName: "Admin.Configuration", IconClass: "icon-wrench", DisplayOrder: 5, ChildNodes: []models.AdminMenuItem{
			{SystemName: "Settings", ResourceName: "Admin.Configuration.Settings", PermissionNames: []string{"ManageSettings"}, Url: "/admin/setting/list"},
			{SystemName: "ScheduleTasks", ResourceName: "Admin.Configuration.ScheduleTasks", PermissionNames: []string{"ManageScheduleTasks"}, Url: "/admin/scheduletask/list"},
		}},
	}

	docs := make([]interface{}, 0, len(menu))
	for _, item := range menu {
		docs = append(docs, item)
	}
	if _, err := i.db.InsertMany(ctx, models.AdminMenuCollection, docs); err != nil {
		return err
	}
	return nil
}

func (i *Installer) installStores(ctx context.Context) error {
	s := models.Store{
		Name:               "Your store",
		Shortcut:           "Store",
		Url:                "http://localhost/",
		SslEnabled:         false,
		CompanyName:        i.opts.Company.Name,
		CompanyAddress:     i.opts.Company.Address,
		CompanyPhoneNumber: i.opts.Company.Phone,
		CompanyEmail:       i.opts.Company.Email,
		DisplayOrder:       1,
	}
	if _, err := i.db.InsertOne(ctx, models.StoreCollection, s); err != nil {
		return fmt.Errorf("failed to insert default store: %w", err)
	}
	return nil
}

func (i *Installer) installMeasures(ctx context.Context) error {
	dimensions := []interface{}{
		models.MeasureDimension{Name: "centimetre", SystemKeyword: "centimetres", Ratio: 1, DisplayOrder: 1},
		models.MeasureDimension{Name: "metre", SystemKeyword: "metres", Ratio: 0.01, DisplayOrder: 2},
		models.MeasureDimension{Name: "inch", SystemKeyword: "inches", Ratio: 0.393701, DisplayOrder: 3},
		models.MeasureDimension{Name: "feet", SystemKeyword: "feet", Ratio: 0.0328084, DisplayOrder: 4},
	}
	if _, err := i.db.InsertMany(ctx, models.MeasureDimensionCollection, dimensions); err != nil {
		return err
	}

	weights := []interface{}{
		models.MeasureWeight{Name: "kg", SystemKeyword: "kg", Ratio: 1, DisplayOrder: 1},
		models.MeasureWeight{Name: "gram", SystemKeyword: "grams", Ratio: 1000, DisplayOrder: 2},
		models.MeasureWeight{Name: "lb", SystemKeyword: "lb", Ratio: 2.20462, DisplayOrder: 3},
		models.MeasureWeight{Name: "ounce", SystemKeyword: "ounce", Ratio: 35.274, DisplayOrder: 4},
	}
	if _, err := i.db.InsertMany(ctx, models.MeasureWeightCollection, weights); err != nil {
		return err
	}

	units := []interface{}{
		models.MeasureUnit{Name: "pcs.", DisplayOrder: 1},
		models.MeasureUnit{Name: "pair", DisplayOrder: 2},
		models.MeasureUnit{Name: "set", DisplayOrder: 3},
	}
	if _, err := i.db.InsertMany(ctx, models.MeasureUnitCollection, units); err != nil {
		return err
	}
	return nil
}

func (i *Installer) installTaxCategories(ctx context.Context) error {
	categories := []interface{}{
		models.TaxCategory{Name: "Books", DisplayOrder: 1},
		models.TaxCategory{Name: "Electronics & Software", DisplayOrder: 5},
		models.TaxCategory{Name: "Downloadable Products", DisplayOrder: 10},
		models.TaxCategory{Name: "Jewelry", DisplayOrder: 15},
		models.TaxCategory{Name: "Apparel", DisplayOrder: 20},
	}
	if _, err := i.db.InsertMany(ctx, models.TaxCategoryCollection, categories); err != nil {
		return err
	}
	return nil
}

func (i *Installer) installLanguages(ctx context.Context) error {
	language := models.Language{
		Name:              "English",
		LanguageCulture:   "en-US",
		UniqueSeoCode:     "en",
		FlagImageFileName: "us.png",
		Published:         true,
		DisplayOrder:      1,
	}
	id, err := i.db.InsertOne(ctx, models.LanguageCollection, language)
	if err != nil {
		return fmt.Errorf("failed to insert default language: %w", err)
	}
	i.defaultLanguageID = id
	return nil
}

func (i *Installer) installCurrencies(ctx context.Context) error {
	currencies := []models.Currency{
		{Name: "US Dollar", CurrencyCode: "USD", Rate: 1, DisplayLocale: "en-US", Published: true, DisplayOrder: 1, NumberDecimal: 2},
		{Name: "Euro", CurrencyCode: "EUR", Rate: 0.95, DisplayLocale: "de-DE", Published: true, DisplayOrder: 2, NumberDecimal: 2},
		{Name: "British Pound", CurrencyCode: "GBP", Rate: 0.82, DisplayLocale: "en-GB", Published: false, DisplayOrder: 3, NumberDecimal: 2},
		{Name: "Polish Zloty", CurrencyCode: "PLN", Rate: 4.11, DisplayLocale: "pl-PL", Published: false, DisplayOrder: 4, NumberDecimal: 2},
		{Name: "Chinese Yuan", CurrencyCode: "CNY", Rate: 7.19, DisplayLocale: "zh-CN", Published: false, DisplayOrder: 5, NumberDecimal: 2},
		{Name: "Indian Rupee", CurrencyCode: "INR", Rate: 83.4, DisplayLocale: "en-IN", Published: false, DisplayOrder: 6, NumberDecimal: 2},
	}

	for idx, c := range currencies {
		id, err := i.db.InsertOne(ctx, models.CurrencyCollection, c)
		if err != nil {
			return fmt.Errorf("failed to insert currency %s: %w", c.CurrencyCode, err)
		}
		if idx == 0 {
			i.defaultCurrencyID = id
		}
	}

	if i.defaultLanguageID != "" {
		// The language carries its display currency; wired here because
		// currencies are seeded after languages.
		return i.db.UpdateByID(ctx, models.LanguageCollection, i.defaultLanguageID,
			bson.M{"defaultCurrencyId": i.defaultCurrencyID})
	}
	return nil
}
