package models

import "time"

const (
	CustomerCollection           = "Customer"
	CustomerGroupCollection      = "CustomerGroup"
	CustomerActionTypeCollection = "CustomerActionType"
)

// System customer group names.
const (
	CustomerGroupAdministrators = "Administrators"
	CustomerGroupRegistered     = "Registered"
	CustomerGroupGuests         = "Guests"
)

type CustomerGroup struct {
	ID           string `bson:"_id,omitempty"`
	Name         string `bson:"name"`
	SystemName   string `bson:"systemName"`
	IsSystem     bool   `bson:"isSystem"`
	Active       bool   `bson:"active"`
	FreeShipping bool   `bson:"freeShipping"`
	TaxExempt    bool   `bson:"taxExempt"`
}

type Customer struct {
	ID               string    `bson:"_id,omitempty"`
	CustomerGuid     string    `bson:"customerGuid"`
	Email            string    `bson:"email"`
	Username         string    `bson:"username"`
	Password         string    `bson:"password"`
	PasswordFormatId int       `bson:"passwordFormatId"`
	Active           bool      `bson:"active"`
	IsSystemAccount  bool      `bson:"isSystemAccount"`
	AdminComment     string    `bson:"adminComment"`
	Groups           []string  `bson:"groups"`
	CreatedOnUtc     time.Time `bson:"createdOnUtc"`
}

// Password formats.
const (
	PasswordFormatClear  = 0
	PasswordFormatHashed = 1
)

type CustomerActionType struct {
	ID            string `bson:"_id,omitempty"`
	Name          string `bson:"name"`
	SystemKeyword string `bson:"systemKeyword"`
	Enabled       bool   `bson:"enabled"`
}
