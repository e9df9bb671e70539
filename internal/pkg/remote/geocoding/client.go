package geocoding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/remote"
)

const ServiceName = "geocoding"

type Client struct {
	remote *remote.Client
}

func NewClient(config remote.Config) *Client {
	return &Client{
		remote: remote.NewClient(ServiceName, config),
	}
}

// Geocode resolves a US postal code to its location.
func (c *Client) Geocode(ctx context.Context, zipCode string) (Response, error) {
	query := url.Values{}
	query.Set("components", fmt.Sprintf("postal_code:%s|country:US", zipCode))
	query.Set("key", c.remote.APIKey)

	var response Response
	err := c.remote.DoJSON(ctx, http.MethodGet, c.remote.BaseURL+"?"+query.Encode(), nil, nil, &response)
	if err != nil {
		return Response{}, fmt.Errorf("geocode zip code: %w", err)
	}

	return response, nil
}

// NormalizeLocation takes the coordinates of the first result.
func NormalizeLocation(response Response) (dto.Coordinates, bool) {
	if len(response.Results) == 0 || response.Results[0].Geometry.Location == nil {
		return dto.Coordinates{}, false
	}

	location := response.Results[0].Geometry.Location

	return dto.Coordinates{
		Latitude:  location.Lat,
		Longitude: location.Lng,
	}, true
}
