package models

const (
	CountryCollection  = "Country"
	CurrencyCollection = "Currency"
	LanguageCollection = "Language"
)

// Country owns its states/provinces as embedded value objects. A state has
// no identity outside its parent country.
type Country struct {
	ID                 string          `bson:"_id,omitempty"`
	Name               string          `bson:"name"`
	TwoLetterIsoCode   string          `bson:"twoLetterIsoCode"`
	ThreeLetterIsoCode string          `bson:"threeLetterIsoCode"`
	NumericIsoCode     int             `bson:"numericIsoCode"`
	AllowsBilling      bool            `bson:"allowsBilling"`
	AllowsShipping     bool            `bson:"allowsShipping"`
	DisplayOrder       int             `bson:"displayOrder"`
	Published          bool            `bson:"published"`
	StateProvinces     []StateProvince `bson:"stateProvinces"`
}

type StateProvince struct {
	Name         string `bson:"name"`
	Abbreviation string `bson:"abbreviation"`
	Published    bool   `bson:"published"`
	DisplayOrder int    `bson:"displayOrder"`
}

type Currency struct {
	ID               string  `bson:"_id,omitempty"`
	Name             string  `bson:"name"`
	CurrencyCode     string  `bson:"currencyCode"`
	Rate             float64 `bson:"rate"`
	DisplayLocale    string  `bson:"displayLocale"`
	CustomFormatting string  `bson:"customFormatting"`
	Published        bool    `bson:"published"`
	DisplayOrder     int     `bson:"displayOrder"`
	RoundingTypeId   int     `bson:"roundingTypeId"`
	NumberDecimal    int     `bson:"numberDecimal"`
}

type Language struct {
	ID                string `bson:"_id,omitempty"`
	Name              string `bson:"name"`
	LanguageCulture   string `bson:"languageCulture"`
	UniqueSeoCode     string `bson:"uniqueSeoCode"`
	FlagImageFileName string `bson:"flagImageFileName"`
	DefaultCurrencyId string `bson:"defaultCurrencyId"`
	Published         bool   `bson:"published"`
	DisplayOrder      int    `bson:"displayOrder"`
}
