package models

import "time"

const (
	StoreCollection                    = "Store"
	SettingCollection                  = "Setting"
	TranslationResourceCollection      = "TranslationResource"
	ActivityLogTypeCollection          = "ActivityLogType"
	ScheduledTaskCollection            = "ScheduleTask"
	MerchandiseReturnReasonCollection  = "MerchandiseReturnReason"
	MerchandiseReturnActionCollection  = "MerchandiseReturnAction"
	MerchandiseReturnCollection        = "MerchandiseReturn"
	PermissionCollection               = "Permission"
	EntityUrlCollection                = "EntityUrl"
	VersionCollection                  = "GrandNodeVersion"

	// Runtime collections: provisioned with their indexes at install time,
	// populated later by the running storefront, never seeded.
	ActivityLogCollection     = "ActivityLog"
	UserApiCollection         = "UserApi"
	CampaignHistoryCollection = "CampaignHistory"
	SearchTermCollection      = "SearchTerm"
)

type Store struct {
	ID                 string `bson:"_id,omitempty"`
	Name               string `bson:"name"`
	Shortcut           string `bson:"shortcut"`
	Url                string `bson:"url"`
	SslEnabled         bool   `bson:"sslEnabled"`
	CompanyName        string `bson:"companyName"`
	CompanyAddress     string `bson:"companyAddress"`
	CompanyPhoneNumber string `bson:"companyPhoneNumber"`
	CompanyEmail       string `bson:"companyEmail"`
	DefaultLanguageId  string `bson:"defaultLanguageId"`
	DisplayOrder       int    `bson:"displayOrder"`
}

type Setting struct {
	ID       string `bson:"_id,omitempty"`
	Name     string `bson:"name"`
	Metadata string `bson:"metadata"`
	StoreId  string `bson:"storeId"`
}

type TranslationResource struct {
	ID         string `bson:"_id,omitempty"`
	LanguageId string `bson:"languageId"`
	Name       string `bson:"name"`
	Value      string `bson:"value"`
}

type ActivityLogType struct {
	ID            string `bson:"_id,omitempty"`
	SystemKeyword string `bson:"systemKeyword"`
	Name          string `bson:"name"`
	Enabled       bool   `bson:"enabled"`
}

type ScheduledTask struct {
	ID               string        `bson:"_id,omitempty"`
	ScheduleTaskName string        `bson:"scheduleTaskName"`
	Type             string        `bson:"type"`
	Enabled          bool          `bson:"enabled"`
	StopOnError      bool          `bson:"stopOnError"`
	TimeInterval     time.Duration `bson:"timeInterval"`
}

type MerchandiseReturnReason struct {
	ID           string `bson:"_id,omitempty"`
	Name         string `bson:"name"`
	DisplayOrder int    `bson:"displayOrder"`
}

type MerchandiseReturnAction struct {
	ID           string `bson:"_id,omitempty"`
	Name         string `bson:"name"`
	DisplayOrder int    `bson:"displayOrder"`
}

type Permission struct {
	ID         string   `bson:"_id,omitempty"`
	Name       string   `bson:"name"`
	SystemName string   `bson:"systemName"`
	Area       string   `bson:"area"`
	Category   string   `bson:"category"`
	Actions    []string `bson:"actions"`
}

// EntityUrl maps a public slug back to an entity. It is the only
// cross-entity lookup structure maintained at the application level.
type EntityUrl struct {
	ID         string `bson:"_id,omitempty"`
	EntityId   string `bson:"entityId"`
	EntityName string `bson:"entityName"`
	LanguageId string `bson:"languageId"`
	Slug       string `bson:"slug"`
	IsActive   bool   `bson:"isActive"`
}

// DataVersion is the install stamp. Its unique index on dataBaseVersion is
// what blocks a second install of the same version.
type DataVersion struct {
	ID              string    `bson:"_id,omitempty"`
	DataBaseVersion string    `bson:"dataBaseVersion"`
	InstalledOnUtc  time.Time `bson:"installedOnUtc"`
}
