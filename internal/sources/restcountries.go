package sources

import (
	"context"
	"fmt"
	"net/url"

	"github.com/ppiankov/clearview/internal/model"
)

const restCountriesDefaultBaseURL = "https://restcountries.com"

// RESTCountries queries the country-facts store for basic geopolitical
// facts (capital, population, region, borders, area).
type RESTCountries struct {
	client  *Client
	BaseURL string
}

// NewRESTCountries creates a country-facts connector
func NewRESTCountries(client *Client) *RESTCountries {
	return &RESTCountries{client: client, BaseURL: restCountriesDefaultBaseURL}
}

type restCountryRecord struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Capital    []string `json:"capital"`
	Population int64    `json:"population"`
	Region     string   `json:"region"`
	Subregion  string   `json:"subregion"`
	Area       float64  `json:"area"`
}

// Fetch retrieves facts for a country by name
func (r *RESTCountries) Fetch(ctx context.Context, countryName string) model.Observation {
	params := url.Values{}
	params.Set("fields", "name,capital,population,region,subregion,borders,area")

	endpoint := r.BaseURL + "/v3.1/name/" + url.PathEscape(countryName)

	var records []restCountryRecord
	if err := r.client.getJSON(ctx, endpoint, params, &records); err != nil {
		return model.Unavailable(err.Error())
	}
	if len(records) == 0 {
		return model.Unavailable("Country not found")
	}

	c := records[0]
	name := c.Name.Common
	if name == "" {
		name = countryName
	}
	capital := "Unknown"
	if len(c.Capital) > 0 {
		capital = c.Capital[0]
	}

	return model.Observation{
		Available:   true,
		Source:      "REST Countries API",
		Country:     name,
		Capital:     capital,
		Population:  c.Population,
		Region:      c.Region,
		Subregion:   c.Subregion,
		LatestValue: fmt.Sprintf("%d", c.Population),
		LatestDate:  "current",
		URL:         "https://restcountries.com/",
	}
}
