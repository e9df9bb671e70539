package airport

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/remote"
	"github.com/samber/lo"
)

const (
	ServiceName = "airport"
	MaxAirports = 5
)

type Client struct {
	remote *remote.Client
}

func NewClient(config remote.Config) *Client {
	return &Client{
		remote: remote.NewClient(ServiceName, config),
	}
}

// NearbyAirports lists the airports closest to a point, nearest first.
func (c *Client) NearbyAirports(ctx context.Context, location dto.Coordinates) (Response, error) {
	query := url.Values{}
	query.Set("maxAirports", strconv.Itoa(MaxAirports))
	query.Set("user_key", c.remote.APIKey)

	endpoint := fmt.Sprintf("%s/airport/nearest/%s/%s?%s",
		c.remote.BaseURL,
		strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		strconv.FormatFloat(location.Longitude, 'f', -1, 64),
		query.Encode(),
	)

	var response Response
	if err := c.remote.DoJSON(ctx, http.MethodGet, endpoint, nil, nil, &response); err != nil {
		return Response{}, fmt.Errorf("find nearby airports: %w", err)
	}

	return response, nil
}

// NormalizeAirports keeps the remote ranking and drops entries without a code.
func NormalizeAirports(response Response) ([]dto.Airport, bool) {
	airports := lo.FilterMap(response.Airports, func(a Airport, _ int) (dto.Airport, bool) {
		return dto.Airport{
			Code:    a.Code,
			Name:    a.Name,
			City:    a.City,
			Country: a.Country,
		}, a.Code != ""
	})

	if len(airports) == 0 {
		return nil, false
	}

	return airports, true
}
