package installer

import (
	"context"

	"github.com/grandnode/grandnode2-sub005/internal/models"
)

func (i *Installer) installShippingMethods(ctx context.Context) error {
	methods := []interface{}{
		models.ShippingMethod{Name: "Ground", Description: "Shipping by land transport", DisplayOrder: 1},
		models.ShippingMethod{Name: "Next Day Air", Description: "The one day air shipping", DisplayOrder: 2},
		models.ShippingMethod{Name: "2nd Day Air", Description: "The two day air shipping", DisplayOrder: 3},
	}
	_, err := i.db.InsertMany(ctx, models.ShippingMethodCollection, methods)
	return err
}

func (i *Installer) installDeliveryDates(ctx context.Context) error {
	dates := []interface{}{
		models.DeliveryDate{Name: "1-2 days", ColorSquaresRgb: "#008000", DisplayOrder: 1},
		models.DeliveryDate{Name: "3-5 days", ColorSquaresRgb: "#FFFF00", DisplayOrder: 5},
		models.DeliveryDate{Name: "1 week", ColorSquaresRgb: "#FF9900", DisplayOrder: 10},
	}
	_, err := i.db.InsertMany(ctx, models.DeliveryDateCollection, dates)
	return err
}
