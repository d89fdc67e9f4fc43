package installer

import (
	"context"
	"fmt"
	"time"

	"github.com/grandnode/grandnode2-sub005/internal/models"
)

func (i *Installer) installDiscounts(ctx context.Context) error {
	discounts := []models.Discount{
		{
			Name:               "Sample discount with coupon code",
			DiscountTypeId:     2,
			DiscountAmount:     10,
			CurrencyCode:       "USD",
			RequiresCouponCode: true,
			CouponCode:         "123",
			IsEnabled:          true,
			LimitationTimes:    1,
		},
		{
			Name:               "20% order total discount",
			DiscountTypeId:     1,
			UsePercentage:      true,
			DiscountPercentage: 20,
			CurrencyCode:       "USD",
			RequiresCouponCode: true,
			CouponCode:         "456",
			IsEnabled:          true,
			LimitationTimes:    3,
		},
	}

	for _, d := range discounts {
		if _, err := i.db.InsertOne(ctx, models.DiscountCollection, d); err != nil {
			return fmt.Errorf("failed to insert discount %s: %w", d.Name, err)
		}
	}
	return nil
}

func (i *Installer) installBlogPosts(ctx context.Context) error {
	posts := []models.BlogPost{
		{
			Title:         "How a blog can help your growing e-commerce business",
			BodyOverview:  "<p>When you start an online business, your main aim is to sell the products, right?</p>",
			Body:          "<p>When you start an online business, your main aim is to sell the products, right? As a business owner, you want to showcase your store to more audience. So, you decide to go on social media.</p>",
			AllowComments: true,
			Tags:          []string{"e-commerce", "blog", "moey"},
			CreatedOnUtc:  time.Now().UTC(),
		},
		{
			Title:         "Why your online store needs a wish list",
			BodyOverview:  "<p>What comes to your mind, when you hear the term Wish list?</p>",
			Body:          "<p>What comes to your mind, when you hear the term Wish list? The application of this feature is exactly how it sounds like: ensuring shoppers never lose sight of products they like.</p>",
			AllowComments: true,
			Tags:          []string{"e-commerce", "grandnode"},
			CreatedOnUtc:  time.Now().UTC(),
		},
	}

	for _, post := range posts {
		id, err := i.db.InsertOne(ctx, models.BlogPostCollection, post)
		if err != nil {
			return fmt.Errorf("failed to insert blog post %s: %w", post.Title, err)
		}
		if _, err := i.saveSlug(ctx, models.BlogPostCollection, id, "BlogPost", post.Title); err != nil {
			return err
		}
	}
	return nil
}

func (i *Installer) installNewsItems(ctx context.Context) error {
	items := []models.NewsItem{
		{
			Title:        "About Store",
			Short:        "It's stable and highly usable. From downloads to documentation, the support works.",
			Full:         "<p>The new store is an open source e-commerce solution. Its stability and usability grow with every release.</p>",
			Published:    true,
			CreatedOnUtc: time.Now().UTC(),
		},
		{
			Title:        "Store news",
			Short:        "The store is open for business. Watch this space for offers and updates.",
			Full:         "<p>The store is open for business. Product lines will be expanded over the coming months.</p>",
			Published:    true,
			CreatedOnUtc: time.Now().UTC(),
		},
		{
			Title:        "New online store is open!",
			Short:        "The shop is open now. We are very excited to offer our new range of products.",
			Full:         "<p>Our online store is officially up and running. Stay tuned for exciting new products.</p>",
			Published:    true,
			CreatedOnUtc: time.Now().UTC(),
		},
	}

	for _, item := range items {
		id, err := i.db.InsertOne(ctx, models.NewsItemCollection, item)
		if err != nil {
			return fmt.Errorf("failed to insert news item %s: %w", item.Title, err)
		}
		if _, err := i.saveSlug(ctx, models.NewsItemCollection, id, "NewsItem", item.Title); err != nil {
			return err
		}
	}
	return nil
}

func (i *Installer) installWarehouses(ctx context.Context) error {
	countryID, err := i.countryID(ctx, "US")
	if err != nil {
		return err
	}

	warehouses := []models.Warehouse{
		{Name: "Warehouse 1 (New York)", Address: "21 West 52nd Street", City: "New York", CountryId: countryID},
		{Name: "Warehouse 2 (Los Angeles)", Address: "300 South Spring Street", City: "Los Angeles", CountryId: countryID},
	}
	for _, w := range warehouses {
		if _, err := i.db.InsertOne(ctx, models.WarehouseCollection, w); err != nil {
			return fmt.Errorf("failed to insert warehouse %s: %w", w.Name, err)
		}
	}
	return nil
}

func (i *Installer) installPickupPoints(ctx context.Context) error {
	countryID, err := i.countryID(ctx, "US")
	if err != nil {
		return err
	}

	point := models.PickupPoint{
		Name:      "My store - New York",
		Address:   "21 West 52nd Street",
		City:      "New York",
		CountryId: countryID,
	}
	if _, err := i.db.InsertOne(ctx, models.PickupPointCollection, point); err != nil {
		return fmt.Errorf("failed to insert pickup point %s: %w", point.Name, err)
	}
	return nil
}

func (i *Installer) installVendors(ctx context.Context) error {
	vendors := []models.Vendor{
		{Name: "Vendor 1", Email: "vendor1email@gmail.com", Description: "Some description...", PageSize: 6, Active: true, DisplayOrder: 1, AllowReviews: true},
		{Name: "Vendor 2", Email: "vendor2email@gmail.com", Description: "Some description...", PageSize: 6, Active: true, DisplayOrder: 2, AllowReviews: true},
	}

	for _, v := range vendors {
		id, err := i.db.InsertOne(ctx, models.VendorCollection, v)
		if err != nil {
			return fmt.Errorf("failed to insert vendor %s: %w", v.Name, err)
		}
		if _, err := i.saveSlug(ctx, models.VendorCollection, id, "Vendor", v.Name); err != nil {
			return err
		}
	}
	return nil
}

func (i *Installer) installAffiliates(ctx context.Context) error {
	affiliate := models.Affiliate{
		Active:          true,
		Name:            "Apple",
		FriendlyUrlName: "apple",
	}
	if _, err := i.db.InsertOne(ctx, models.AffiliateCollection, affiliate); err != nil {
		return fmt.Errorf("failed to insert affiliate %s: %w", affiliate.Name, err)
	}
	return nil
}

func (i *Installer) installOrderTags(ctx context.Context) error {
	tags := []models.OrderTag{
		{Name: "vip", Count: 0},
		{Name: "wholesale", Count: 0},
	}
	for _, tag := range tags {
		if _, err := i.db.InsertOne(ctx, models.OrderTagCollection, tag); err != nil {
			return fmt.Errorf("failed to insert order tag %s: %w", tag.Name, err)
		}
	}
	return nil
}
