package models

import "time"

const (
	TaxCategoryCollection            = "TaxCategory"
	CategoryLayoutCollection         = "CategoryLayout"
	ProductLayoutCollection          = "ProductLayout"
	BrandLayoutCollection            = "BrandLayout"
	CollectionLayoutCollection       = "CollectionLayout"
	CheckoutAttributeCollection      = "CheckoutAttribute"
	SpecificationAttributeCollection = "SpecificationAttribute"
	ProductAttributeCollection       = "ProductAttribute"
	CategoryCollection               = "Category"
	BrandCollection                  = "Brand"
	ProductCollection                = "Product"
	ProductTagCollection             = "ProductTag"
	ProductReviewCollection          = "ProductReview"
	DiscountCollection               = "Discount"
	WarehouseCollection              = "Warehouse"
	PickupPointCollection            = "PickupPoint"
	VendorCollection                 = "Vendor"
	AffiliateCollection              = "Affiliate"
	OrderCollection                  = "Order"
	OrderTagCollection               = "OrderTag"
	OrderStatusCollection            = "OrderStatus"
)

// Product types.
const (
	ProductTypeSimple  = 5
	ProductTypeGrouped = 10
	ProductTypeBundled = 15
)

type TaxCategory struct {
	ID           string `bson:"_id,omitempty"`
	Name         string `bson:"name"`
	DisplayOrder int    `bson:"displayOrder"`
}

// Layout records share one shape; each entity area keeps its own collection
// so lookups by name stay scoped to the referencing type.
type Layout struct {
	ID           string `bson:"_id,omitempty"`
	Name         string `bson:"name"`
	ViewPath     string `bson:"viewPath"`
	DisplayOrder int    `bson:"displayOrder"`
}

type CheckoutAttribute struct {
	ID                      string                   `bson:"_id,omitempty"`
	Name                    string                   `bson:"name"`
	IsRequired              bool                     `bson:"isRequired"`
	AttributeControlTypeId  int                      `bson:"attributeControlTypeId"`
	DisplayOrder            int                      `bson:"displayOrder"`
	CheckoutAttributeValues []CheckoutAttributeValue `bson:"checkoutAttributeValues"`
}

type CheckoutAttributeValue struct {
	ID              string  `bson:"id"`
	Name            string  `bson:"name"`
	PriceAdjustment float64 `bson:"priceAdjustment"`
	DisplayOrder    int     `bson:"displayOrder"`
	IsPreSelected   bool    `bson:"isPreSelected"`
}

type SpecificationAttribute struct {
	ID                            string                         `bson:"_id,omitempty"`
	Name                          string                         `bson:"name"`
	SeName                        string                         `bson:"seName"`
	DisplayOrder                  int                            `bson:"displayOrder"`
	SpecificationAttributeOptions []SpecificationAttributeOption `bson:"specificationAttributeOptions"`
}

// SpecificationAttributeOption is a sub-entity: it lives inside its parent
// document but carries its own id so products can reference it directly.
type SpecificationAttributeOption struct {
	ID           string `bson:"id"`
	Name         string `bson:"name"`
	DisplayOrder int    `bson:"displayOrder"`
}

type ProductAttribute struct {
	ID     string `bson:"_id,omitempty"`
	Name   string `bson:"name"`
	SeName string `bson:"seName"`
}

type Category struct {
	ID               string    `bson:"_id,omitempty"`
	Name             string    `bson:"name"`
	Description      string    `bson:"description"`
	CategoryLayoutId string    `bson:"categoryLayoutId"`
	ParentCategoryId string    `bson:"parentCategoryId"`
	PictureId        string    `bson:"pictureId"`
	PageSize         int       `bson:"pageSize"`
	IncludeInMenu    bool      `bson:"includeInMenu"`
	ShowOnHomePage   bool      `bson:"showOnHomePage"`
	Published        bool      `bson:"published"`
	DisplayOrder     int       `bson:"displayOrder"`
	SeName           string    `bson:"seName"`
	CreatedOnUtc     time.Time `bson:"createdOnUtc"`
}

type Brand struct {
	ID            string    `bson:"_id,omitempty"`
	Name          string    `bson:"name"`
	Description   string    `bson:"description"`
	BrandLayoutId string    `bson:"brandLayoutId"`
	PictureId     string    `bson:"pictureId"`
	PageSize      int       `bson:"pageSize"`
	Published     bool      `bson:"published"`
	DisplayOrder  int       `bson:"displayOrder"`
	SeName        string    `bson:"seName"`
	CreatedOnUtc  time.Time `bson:"createdOnUtc"`
}

type Product struct {
	ID                      string                          `bson:"_id,omitempty"`
	ProductTypeId           int                             `bson:"productTypeId"`
	ParentGroupedProductId  string                          `bson:"parentGroupedProductId"`
	VisibleIndividually     bool                            `bson:"visibleIndividually"`
	Name                    string                          `bson:"name"`
	SeName                  string                          `bson:"seName"`
	ShortDescription        string                          `bson:"shortDescription"`
	FullDescription         string                          `bson:"fullDescription"`
	ProductLayoutId         string                          `bson:"productLayoutId"`
	BrandId                 string                          `bson:"brandId"`
	VendorId                string                          `bson:"vendorId"`
	ShowOnHomePage          bool                            `bson:"showOnHomePage"`
	AllowCustomerReviews    bool                            `bson:"allowCustomerReviews"`
	ApprovedRatingSum       int                             `bson:"approvedRatingSum"`
	ApprovedTotalReviews    int                             `bson:"approvedTotalReviews"`
	NotApprovedRatingSum    int                             `bson:"notApprovedRatingSum"`
	NotApprovedTotalReviews int                             `bson:"notApprovedTotalReviews"`
	Sku                     string                          `bson:"sku"`
	IsDownload              bool                            `bson:"isDownload"`
	DownloadId              string                          `bson:"downloadId"`
	IsShipEnabled           bool                            `bson:"isShipEnabled"`
	DeliveryDateId          string                          `bson:"deliveryDateId"`
	TaxCategoryId           string                          `bson:"taxCategoryId"`
	ManageInventoryMethodId int                             `bson:"manageInventoryMethodId"`
	StockQuantity           int                             `bson:"stockQuantity"`
	OrderMinimumQuantity    int                             `bson:"orderMinimumQuantity"`
	OrderMaximumQuantity    int                             `bson:"orderMaximumQuantity"`
	Price                   float64                         `bson:"price"`
	OldPrice                float64                         `bson:"oldPrice"`
	Weight                  float64                         `bson:"weight"`
	Length                  float64                         `bson:"length"`
	Width                   float64                         `bson:"width"`
	Height                  float64                         `bson:"height"`
	Published               bool                            `bson:"published"`
	Sold                    int                             `bson:"sold"`
	MarkAsNew               bool                            `bson:"markAsNew"`
	DisplayOrder            int                             `bson:"displayOrder"`
	CreatedOnUtc            time.Time                       `bson:"createdOnUtc"`
	UpdatedOnUtc            time.Time                       `bson:"updatedOnUtc"`
	ProductCategories       []ProductCategory               `bson:"productCategories"`
	ProductPictures         []ProductPicture                `bson:"productPictures"`
	ProductSpecifications   []ProductSpecificationAttribute `bson:"productSpecifications"`
	ProductAttributeMappings []ProductAttributeMapping      `bson:"productAttributeMappings"`
	RelatedProducts         []RelatedProduct                `bson:"relatedProducts"`
	ProductTags             []string                        `bson:"productTags"`
	BundleProducts          []BundleProduct                 `bson:"bundleProducts"`
}

type ProductCategory struct {
	CategoryId   string `bson:"categoryId"`
	IsFeatured   bool   `bson:"isFeatured"`
	DisplayOrder int    `bson:"displayOrder"`
}

type ProductPicture struct {
	PictureId    string `bson:"pictureId"`
	DisplayOrder int    `bson:"displayOrder"`
}

type ProductSpecificationAttribute struct {
	SpecificationAttributeId       string `bson:"specificationAttributeId"`
	SpecificationAttributeOptionId string `bson:"specificationAttributeOptionId"`
	AllowFiltering                 bool   `bson:"allowFiltering"`
	ShowOnProductPage              bool   `bson:"showOnProductPage"`
	DisplayOrder                   int    `bson:"displayOrder"`
}

type ProductAttributeMapping struct {
	ProductAttributeId     string                  `bson:"productAttributeId"`
	TextPrompt             string                  `bson:"textPrompt"`
	IsRequired             bool                    `bson:"isRequired"`
	AttributeControlTypeId int                     `bson:"attributeControlTypeId"`
	ProductAttributeValues []ProductAttributeValue `bson:"productAttributeValues"`
}

type ProductAttributeValue struct {
	Name            string  `bson:"name"`
	PriceAdjustment float64 `bson:"priceAdjustment"`
	DisplayOrder    int     `bson:"displayOrder"`
	IsPreSelected   bool    `bson:"isPreSelected"`
}

// RelatedProduct is a directional link. The reverse direction, when wanted,
// is stored as its own record on the other product.
type RelatedProduct struct {
	ProductId2   string `bson:"productId2"`
	DisplayOrder int    `bson:"displayOrder"`
}

type BundleProduct struct {
	ProductId    string `bson:"productId"`
	Quantity     int    `bson:"quantity"`
	DisplayOrder int    `bson:"displayOrder"`
}

type ProductTag struct {
	ID     string `bson:"_id,omitempty"`
	Name   string `bson:"name"`
	SeName string `bson:"seName"`
	Count  int    `bson:"count"`
}

type ProductReview struct {
	ID           string    `bson:"_id,omitempty"`
	ProductId    string    `bson:"productId"`
	CustomerId   string    `bson:"customerId"`
	Title        string    `bson:"title"`
	ReviewText   string    `bson:"reviewText"`
	Rating       int       `bson:"rating"`
	IsApproved   bool      `bson:"isApproved"`
	CreatedOnUtc time.Time `bson:"createdOnUtc"`
}

type Discount struct {
	ID                 string  `bson:"_id,omitempty"`
	Name               string  `bson:"name"`
	DiscountTypeId     int     `bson:"discountTypeId"`
	UsePercentage      bool    `bson:"usePercentage"`
	DiscountPercentage float64 `bson:"discountPercentage"`
	DiscountAmount     float64 `bson:"discountAmount"`
	CurrencyCode       string  `bson:"currencyCode"`
	RequiresCouponCode bool    `bson:"requiresCouponCode"`
	CouponCode         string  `bson:"couponCode"`
	IsEnabled          bool    `bson:"isEnabled"`
	LimitationTimes    int     `bson:"limitationTimes"`
}

type Warehouse struct {
	ID           string `bson:"_id,omitempty"`
	Name         string `bson:"name"`
	AdminComment string `bson:"adminComment"`
	Address      string `bson:"address"`
	City         string `bson:"city"`
	CountryId    string `bson:"countryId"`
}

type PickupPoint struct {
	ID           string  `bson:"_id,omitempty"`
	Name         string  `bson:"name"`
	AdminComment string  `bson:"adminComment"`
	Address      string  `bson:"address"`
	City         string  `bson:"city"`
	CountryId    string  `bson:"countryId"`
	WarehouseId  string  `bson:"warehouseId"`
	PickupFee    float64 `bson:"pickupFee"`
	DisplayOrder int     `bson:"displayOrder"`
}

type Vendor struct {
	ID           string `bson:"_id,omitempty"`
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	Description  string `bson:"description"`
	PictureId    string `bson:"pictureId"`
	PageSize     int    `bson:"pageSize"`
	Active       bool   `bson:"active"`
	DisplayOrder int    `bson:"displayOrder"`
	SeName       string `bson:"seName"`
	AllowReviews bool   `bson:"allowCustomerReviews"`
}

type Affiliate struct {
	ID              string `bson:"_id,omitempty"`
	Active          bool   `bson:"active"`
	AdminComment    string `bson:"adminComment"`
	FriendlyUrlName string `bson:"friendlyUrlName"`
	Name            string `bson:"name"`
}

type OrderTag struct {
	ID    string `bson:"_id,omitempty"`
	Name  string `bson:"name"`
	Count int    `bson:"count"`
}

type OrderStatus struct {
	ID           string `bson:"_id,omitempty"`
	StatusId     int    `bson:"statusId"`
	Name         string `bson:"name"`
	IsSystem     bool   `bson:"isSystem"`
	DisplayOrder int    `bson:"displayOrder"`
}
