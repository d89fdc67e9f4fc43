package installer

import (
	"context"
	"fmt"
	"time"

	"github.com/grandnode/grandnode2-sub005/internal/models"
)

func (i *Installer) installSettings(ctx context.Context) error {
	settings := []interface{}{
		models.Setting{Name: "CatalogSettings.DefaultViewMode", Metadata: "grid"},
		models.Setting{Name: "CatalogSettings.ProductsByTagPageSize", Metadata: "6"},
		models.Setting{Name: "CatalogSettings.RecentlyViewedProductsNumber", Metadata: "3"},
		models.Setting{Name: "CustomerSettings.PasswordMinLength", Metadata: "6"},
		models.Setting{Name: "CustomerSettings.AllowCustomersToUploadAvatars", Metadata: "false"},
		models.Setting{Name: "OrderSettings.MinOrderTotalAmount", Metadata: "0"},
		models.Setting{Name: "ShippingSettings.FreeShippingOverXEnabled", Metadata: "false"},
		models.Setting{Name: "TaxSettings.DefaultTaxCategoryId", Metadata: ""},
		models.Setting{Name: "MediaSettings.ProductThumbPictureSize", Metadata: "415"},
		models.Setting{Name: "SeoSettings.DefaultTitle", Metadata: "Your store"},
	}
	_, err := i.db.InsertMany(ctx, models.SettingCollection, settings)
	return err
}

func (i *Installer) installPageLayouts(ctx context.Context) error {
	layouts := []interface{}{
		models.Layout{Name: "Default layout", ViewPath: "PageDetails", DisplayOrder: 1},
		models.Layout{Name: "Full width layout", ViewPath: "PageDetails.FullWidth", DisplayOrder: 10},
	}
	_, err := i.db.InsertMany(ctx, models.PageLayoutCollection, layouts)
	return err
}

// installPages runs after installPageLayouts; each page resolves its layout
// by name.
func (i *Installer) installPages(ctx context.Context) error {
	layoutID, err := i.layoutID(ctx, models.PageLayoutCollection, "Default layout")
	if err != nil {
		return err
	}

	pages := []models.Page{
		{SystemName: "AboutUs", Title: "About us", Body: "<p>Put your &quot;About Us&quot; information here.</p>", IncludeInSitemap: true, IncludeInMenu: true, DisplayOrder: 5},
		{SystemName: "PrivacyInfo", Title: "Privacy notice", Body: "<p>Put your privacy policy information here.</p>", IncludeInSitemap: true, DisplayOrder: 10},
		{SystemName: "ConditionsOfUse", Title: "Conditions of Use", Body: "<p>Put your conditions of use information here.</p>", IncludeInSitemap: true, DisplayOrder: 15},
		{SystemName: "ShippingInfo", Title: "Shipping & returns", Body: "<p>Put your shipping &amp; returns information here.</p>", IncludeInSitemap: true, DisplayOrder: 20},
		{SystemName: "ContactUs", Title: "Contact us", Body: "<p>Put your contact information here.</p>", IncludeInSitemap: true, DisplayOrder: 25},
	}

	for _, page := range pages {
		page.PageLayoutId = layoutID
		page.Published = true
		id, err := i.db.InsertOne(ctx, models.PageCollection, page)
		if err != nil {
			return fmt.Errorf("failed to insert page %s: %w", page.SystemName, err)
		}
		if _, err := i.saveSlug(ctx, models.PageCollection, id, "Page", page.Title); err != nil {
			return err
		}
	}
	return nil
}

func (i *Installer) installTranslationResources(ctx context.Context) error {
	if i.defaultLanguageID == "" {
		return fmt.Errorf("no language seeded before translation resources")
	}

	resources := map[string]string{
		"Account.Login":                    "Log in",
		"Account.Logout":                   "Log out",
		"Account.Register":                 "Register",
		"Checkout.Button":                  "Checkout",
		"Products.SortBy.NameAsc":          "Name: A to Z",
		"Products.SortBy.PriceAsc":         "Price: Low to High",
		"Products.SortBy.PriceDesc":        "Price: High to Low",
		"Products.SortBy.Position":         "Position",
		"ShoppingCart.AddToCart":           "Add to cart",
		"ShoppingCart.AddToWishlist":       "Add to wishlist",
		"Search.SearchBox.Text":            "Search store",
		"Newsletter.Subscribe":             "Subscribe",
		"Blog.RSS":                         "RSS",
		"News.ViewAll":                     "View News Archive",
		"Order.OrderDetails":               "Order details",
	}

	docs := make([]interface{}, 0, len(resources))
	for name, value := range resources {
		docs = append(docs, models.TranslationResource{
			LanguageId: i.defaultLanguageID,
			Name:       name,
			Value:      value,
		})
	}
	_, err := i.db.InsertMany(ctx, models.TranslationResourceCollection, docs)
	return err
}

func (i *Installer) installActivityLogTypes(ctx context.Context) error {
	types := []struct {
		keyword string
		name    string
	}{
		{"AddNewCategory", "Add a new category"},
		{"AddNewProduct", "Add a new product"},
		{"AddNewCustomer", "Add a new customer"},
		{"AddNewDiscount", "Add a new discount"},
		{"DeleteCategory", "Delete category"},
		{"DeleteProduct", "Delete a product"},
		{"DeleteCustomer", "Delete a customer"},
		{"DeleteDiscount", "Delete a discount"},
		{"EditCategory", "Edit category"},
		{"EditProduct", "Edit a product"},
		{"EditCustomer", "Edit a customer"},
		{"EditDiscount", "Edit a discount"},
		{"EditSettings", "Edit setting(s)"},
		{"PublicStore.ViewCategory", "Public store. View a category"},
		{"PublicStore.ViewProduct", "Public store. View a product"},
		{"PublicStore.PlaceOrder", "Public store. Place an order"},
		{"PublicStore.AddToShoppingCart", "Public store. Add to shopping cart"},
		{"PublicStore.AddToWishlist", "Public store. Add to wishlist"},
		{"PublicStore.Login", "Public store. Login"},
		{"PublicStore.Logout", "Public store. Logout"},
	}

	docs := make([]interface{}, 0, len(types))
	for _, t := range types {
		docs = append(docs, models.ActivityLogType{
			SystemKeyword: t.keyword,
			Name:          t.name,
			Enabled:       true,
		})
	}
	_, err := i.db.InsertMany(ctx, models.ActivityLogTypeCollection, docs)
	return err
}

func (i *Installer) installCatalogLayouts(ctx context.Context) error {
	categoryLayouts := []interface{}{
		models.Layout{Name: "Grid or Lines", ViewPath: "CategoryLayout.GridOrLines", DisplayOrder: 1},
		models.Layout{Name: "Products in Grid or Lines", ViewPath: "CategoryLayout.ProductsInGridOrLines", DisplayOrder: 100},
	}
	if _, err := i.db.InsertMany(ctx, models.CategoryLayoutCollection, categoryLayouts); err != nil {
		return err
	}

	productLayouts := []interface{}{
		models.Layout{Name: "Simple product", ViewPath: "ProductLayout.Simple", DisplayOrder: 10},
		models.Layout{Name: "Grouped product (with variants)", ViewPath: "ProductLayout.Grouped", DisplayOrder: 100},
	}
	if _, err := i.db.InsertMany(ctx, models.ProductLayoutCollection, productLayouts); err != nil {
		return err
	}

	brandLayouts := []interface{}{
		models.Layout{Name: "Products in Grid or Lines", ViewPath: "BrandLayout.ProductsInGridOrLines", DisplayOrder: 1},
	}
	if _, err := i.db.InsertMany(ctx, models.BrandLayoutCollection, brandLayouts); err != nil {
		return err
	}

	collectionLayouts := []interface{}{
		models.Layout{Name: "Products in Grid or Lines", ViewPath: "CollectionLayout.ProductsInGridOrLines", DisplayOrder: 1},
	}
	if _, err := i.db.InsertMany(ctx, models.CollectionLayoutCollection, collectionLayouts); err != nil {
		return err
	}
	return nil
}

func (i *Installer) installScheduledTasks(ctx context.Context) error {
	tasks := []interface{}{
		models.ScheduledTask{ScheduleTaskName: "Send emails", Type: "QueuedMessagesSendScheduleTask", Enabled: true, TimeInterval: time.Minute},
		models.ScheduledTask{ScheduleTaskName: "Delete guests", Type: "DeleteGuestsScheduleTask", Enabled: true, TimeInterval: 10 * time.Minute},
		models.ScheduledTask{ScheduleTaskName: "Clear cache", Type: "ClearCacheScheduleTask", Enabled: false, TimeInterval: 10 * time.Minute},
		models.ScheduledTask{ScheduleTaskName: "Update currency exchange rates", Type: "UpdateExchangeRateScheduleTask", Enabled: false, TimeInterval: time.Hour},
		models.ScheduledTask{ScheduleTaskName: "Customer reminder - abandoned cart", Type: "CustomerReminderAbandonedCartScheduleTask", Enabled: false, TimeInterval: 8 * time.Hour},
		models.ScheduledTask{ScheduleTaskName: "Cancel unpaid and pending orders", Type: "CancelOrderScheduledTask", Enabled: false, StopOnError: true, TimeInterval: 24 * time.Hour},
	}
	_, err := i.db.InsertMany(ctx, models.ScheduledTaskCollection, tasks)
	return err
}

func (i *Installer) installReturnReasons(ctx context.Context) error {
	reasons := []interface{}{
		models.MerchandiseReturnReason{Name: "Received Wrong Product", DisplayOrder: 1},
		models.MerchandiseReturnReason{Name: "Wrong Product Ordered", DisplayOrder: 2},
		models.MerchandiseReturnReason{Name: "There Was A Problem With The Product", DisplayOrder: 3},
	}
	_, err := i.db.InsertMany(ctx, models.MerchandiseReturnReasonCollection, reasons)
	return err
}

func (i *Installer) installReturnActions(ctx context.Context) error {
	actions := []interface{}{
		models.MerchandiseReturnAction{Name: "Repair", DisplayOrder: 1},
		models.MerchandiseReturnAction{Name: "Replacement", DisplayOrder: 2},
		models.MerchandiseReturnAction{Name: "Store Credit", DisplayOrder: 3},
	}
	_, err := i.db.InsertMany(ctx, models.MerchandiseReturnActionCollection, actions)
	return err
}

func (i *Installer) installOrderStatuses(ctx context.Context) error {
	statuses := []interface{}{
		models.OrderStatus{StatusId: 10, Name: "Pending", IsSystem: true, DisplayOrder: 0},
		models.OrderStatus{StatusId: 20, Name: "Processing", IsSystem: true, DisplayOrder: 10},
		models.OrderStatus{StatusId: 30, Name: "Complete", IsSystem: true, DisplayOrder: 20},
		models.OrderStatus{StatusId: 40, Name: "Cancelled", IsSystem: true, DisplayOrder: 30},
	}
	_, err := i.db.InsertMany(ctx, models.OrderStatusCollection, statuses)
	return err
}

func (i *Installer) installPermissions(ctx context.Context) error {
	crud := []string{"List", "Create", "Edit", "Preview", "Delete", "Export", "Import"}

	permissions := []struct {
		name       string
		systemName string
		category   string
	}{
		{"Manage Products", "ManageProducts", "Catalog"},
		{"Manage Categories", "ManageCategories", "Catalog"},
		{"Manage Brands", "ManageBrands", "Catalog"},
		{"Manage Discounts", "ManageDiscounts", "Marketing"},
		{"Manage Customers", "ManageCustomers", "Customers"},
		{"Manage Customer Groups", "ManageCustomerGroups", "Customers"},
		{"Manage Orders", "ManageOrders", "Orders"},
		{"Manage Merchandise Returns", "ManageMerchandiseReturns", "Orders"},
		{"Manage Pages", "ManagePages", "Content"},
		{"Manage Message Templates", "ManageMessageTemplates", "Content"},
		{"Manage Blog", "ManageBlog", "Content"},
		{"Manage News", "ManageNews", "Content"},
		{"Manage Settings", "ManageSettings", "Configuration"},
		{"Manage Schedule Tasks", "ManageScheduleTasks", "Configuration"},
		{"Manage Activity Log", "ManageActivityLog", "Configuration"},
		{"Access Admin Panel", "AccessAdminPanel", "Standard"},
	}

	docs := make([]interface{}, 0, len(permissions))
	for _, p := range permissions {
		docs = append(docs, models.Permission{
			Name:       p.name,
			SystemName: p.systemName,
			Area:       "Admin area",
			Category:   p.category,
			Actions:    crud,
		})
	}
	_, err := i.db.InsertMany(ctx, models.PermissionCollection, docs)
	return err
}
