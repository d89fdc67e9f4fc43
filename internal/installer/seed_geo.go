package installer

import (
	"context"
	"fmt"

	"github.com/grandnode/grandnode2-sub005/internal/models"
)

// installCountries inserts the country reference set. States and provinces
// are value objects embedded in their country document; they are never
// persisted on their own.
func (i *Installer) installCountries(ctx context.Context) error {
	countries := countrySeed()

	docs := make([]interface{}, 0, len(countries))
	for _, c := range countries {
		docs = append(docs, c)
	}
	if _, err := i.db.InsertMany(ctx, models.CountryCollection, docs); err != nil {
		return fmt.Errorf("failed to insert countries: %w", err)
	}
	return nil
}

func countrySeed() []models.Country {
	countries := []models.Country{
		{
			Name: "United States", TwoLetterIsoCode: "US", ThreeLetterIsoCode: "USA", NumericIsoCode: 840,
			AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 1,
			StateProvinces: usStates(),
		},
		{
			Name: "Poland", TwoLetterIsoCode: "PL", ThreeLetterIsoCode: "POL", NumericIsoCode: 616,
			AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 2,
			StateProvinces: polishVoivodeships(),
		},
		{Name: "Canada", TwoLetterIsoCode: "CA", ThreeLetterIsoCode: "CAN", NumericIsoCode: 124, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "United Kingdom", TwoLetterIsoCode: "GB", ThreeLetterIsoCode: "GBR", NumericIsoCode: 826, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Germany", TwoLetterIsoCode: "DE", ThreeLetterIsoCode: "DEU", NumericIsoCode: 276, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "France", TwoLetterIsoCode: "FR", ThreeLetterIsoCode: "FRA", NumericIsoCode: 250, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Spain", TwoLetterIsoCode: "ES", ThreeLetterIsoCode: "ESP", NumericIsoCode: 724, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Italy", TwoLetterIsoCode: "IT", ThreeLetterIsoCode: "ITA", NumericIsoCode: 380, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Netherlands", TwoLetterIsoCode: "NL", ThreeLetterIsoCode: "NLD", NumericIsoCode: 528, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Australia", TwoLetterIsoCode: "AU", ThreeLetterIsoCode: "AUS", NumericIsoCode: 36, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Japan", TwoLetterIsoCode: "JP", ThreeLetterIsoCode: "JPN", NumericIsoCode: 392, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "China", TwoLetterIsoCode: "CN", ThreeLetterIsoCode: "CHN", NumericIsoCode: 156, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "India", TwoLetterIsoCode: "IN", ThreeLetterIsoCode: "IND", NumericIsoCode: 356, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Brazil", TwoLetterIsoCode: "BR", ThreeLetterIsoCode: "BRA", NumericIsoCode: 76, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Switzerland", TwoLetterIsoCode: "CH", ThreeLetterIsoCode: "CHE", NumericIsoCode: 756, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Sweden", TwoLetterIsoCode: "SE", ThreeLetterIsoCode: "SWE", NumericIsoCode: 752, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
		{Name: "Norway", TwoLetterIsoCode: "NO", ThreeLetterIsoCode: "NOR", NumericIsoCode: 578, AllowsBilling: true, AllowsShipping: true, Published: true, DisplayOrder: 100},
	}
	return countries
}

func usStates() []models.StateProvince {
	names := []struct {
		name string
		abbr string
	}{
		{"Alabama", "AL"}, {"Alaska", "AK"}, {"Arizona", "AZ"}, {"Arkansas", "AR"},
		{"California", "CA"}, {"Colorado", "CO"}, {"Connecticut", "CT"}, {"Delaware", "DE"},
		{"District of Columbia", "DC"}, {"Florida", "FL"}, {"Georgia", "GA"}, {"Hawaii", "HI"},
		{"Idaho", "ID"}, {"Illinois", "IL"}, {"Indiana", "IN"}, {"Iowa", "IA"},
		{"Kansas", "KS"}, {"Kentucky", "KY"}, {"Louisiana", "LA"}, {"Maine", "ME"},
		{"Maryland", "MD"}, {"Massachusetts", "MA"}, {"Michigan", "MI"}, {"Minnesota", "MN"},
		{"Mississippi", "MS"}, {"Missouri", "MO"}, {"Montana", "MT"}, {"Nebraska", "NE"},
		{"Nevada", "NV"}, {"New Hampshire", "NH"}, {"New Jersey", "NJ"}, {"New Mexico", "NM"},
		{"New York", "NY"}, {"North Carolina", "NC"}, {"North Dakota", "ND"}, {"Ohio", "OH"},
		{"Oklahoma", "OK"}, {"Oregon", "OR"}, {"Pennsylvania", "PA"}, {"Rhode Island", "RI"},
		{"South Carolina", "SC"}, {"South Dakota", "SD"}, {"Tennessee", "TN"}, {"Texas", "TX"},
		{"Utah", "UT"}, {"Vermont", "VT"}, {"Virginia", "VA"}, {"Washington", "WA"},
		{"West Virginia", "WV"}, {"Wisconsin", "WI"}, {"Wyoming", "WY"},
	}

	states := make([]models.StateProvince, 0, len(names))
	for idx, n := range names {
		states = append(states, models.StateProvince{
			Name: n.name, Abbreviation: n.abbr, Published: true, DisplayOrder: idx + 1,
		})
	}
	return states
}

func polishVoivodeships() []models.StateProvince {
	names := []string{
		"Dolnośląskie", "Kujawsko-Pomorskie", "Lubelskie", "Lubuskie",
		"Łódzkie", "Małopolskie", "Mazowieckie", "Opolskie",
		"Podkarpackie", "Podlaskie", "Pomorskie", "Śląskie",
		"Świętokrzyskie", "Warmińsko-Mazurskie", "Wielkopolskie", "Zachodniopomorskie",
	}

	states := make([]models.StateProvince, 0, len(names))
	for idx, name := range names {
		states = append(states, models.StateProvince{
			Name: name, Published: true, DisplayOrder: idx + 1,
		})
	}
	return states
}
