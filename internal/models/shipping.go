package models

const (
	ShippingMethodCollection   = "ShippingMethod"
	DeliveryDateCollection     = "DeliveryDate"
	MeasureDimensionCollection = "MeasureDimension"
	MeasureWeightCollection    = "MeasureWeight"
	MeasureUnitCollection      = "MeasureUnit"
	ShipmentCollection         = "Shipment"
)

type ShippingMethod struct {
	ID           string `bson:"_id,omitempty"`
	Name         string `bson:"name"`
	Description  string `bson:"description"`
	DisplayOrder int    `bson:"displayOrder"`
}

type DeliveryDate struct {
	ID              string `bson:"_id,omitempty"`
	Name            string `bson:"name"`
	DisplayOrder    int    `bson:"displayOrder"`
	ColorSquaresRgb string `bson:"colorSquaresRgb"`
}

type MeasureDimension struct {
	ID            string  `bson:"_id,omitempty"`
	Name          string  `bson:"name"`
	SystemKeyword string  `bson:"systemKeyword"`
	Ratio         float64 `bson:"ratio"`
	DisplayOrder  int     `bson:"displayOrder"`
}

type MeasureWeight struct {
	ID            string  `bson:"_id,omitempty"`
	Name          string  `bson:"name"`
	SystemKeyword string  `bson:"systemKeyword"`
	Ratio         float64 `bson:"ratio"`
	DisplayOrder  int     `bson:"displayOrder"`
}

type MeasureUnit struct {
	ID           string `bson:"_id,omitempty"`
	Name         string `bson:"name"`
	DisplayOrder int    `bson:"displayOrder"`
}
