package expedia

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/remote"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/utils"
)

const (
	ServiceName = "hotel"
	MaxHotels   = 10
	Radius      = "5km"
)

// SearchRequest describes a stay near a point for a date range.
type SearchRequest struct {
	Location dto.Coordinates
	CheckIn  time.Time
	CheckOut time.Time
}

type Client struct {
	remote *remote.Client
}

func NewClient(config remote.Config) *Client {
	return &Client{
		remote: remote.NewClient(ServiceName, config),
	}
}

// SearchHotels lists hotels around the location sorted by price.
func (c *Client) SearchHotels(ctx context.Context, req SearchRequest) (Response, error) {
	query := url.Values{}
	query.Set("maxhotels", strconv.Itoa(MaxHotels))
	query.Set("location", fmt.Sprintf("%s,%s",
		strconv.FormatFloat(req.Location.Latitude, 'f', -1, 64),
		strconv.FormatFloat(req.Location.Longitude, 'f', -1, 64)))
	query.Set("radius", Radius)
	query.Set("checkInDate", req.CheckIn.Format(dto.DateLayout))
	query.Set("checkOutDate", req.CheckOut.Format(dto.DateLayout))
	query.Set("adults", "1")
	query.Set("sort", "price")
	query.Set("include", "description, address, thumbnailurl, amenitylist, geolocation")
	query.Set("allroomtypes", "false")

	header := http.Header{}
	header.Set("Authorization", "expedia-apikey key="+c.remote.APIKey)

	var response Response
	endpoint := c.remote.BaseURL + "/x/hotels?" + query.Encode()
	if err := c.remote.DoJSON(ctx, http.MethodGet, endpoint, nil, header, &response); err != nil {
		return Response{}, fmt.Errorf("search hotels: %w", err)
	}

	return response, nil
}

// NormalizeHotel picks the cheapest usable entry among the first HotelCount.
// Ties keep the earlier entry, so a price-sorted list yields its head.
func NormalizeHotel(response Response) (dto.HotelOption, bool) {
	count, err := response.HotelCount.Int64()
	if err != nil || count <= 0 {
		return dto.HotelOption{}, false
	}

	hotels := response.HotelInfoList.HotelInfo
	if int64(len(hotels)) > count {
		hotels = hotels[:count]
	}

	var (
		best  dto.HotelOption
		found bool
	)

	for _, hotel := range hotels {
		option, ok := normalizeEntry(hotel)
		if !ok {
			continue
		}

		if !found || option.Price.Amount < best.Price.Amount {
			best = option
			found = true
		}
	}

	return best, found
}

func normalizeEntry(hotel HotelInfo) (dto.HotelOption, bool) {
	if hotel.Name == "" {
		return dto.HotelOption{}, false
	}

	amount, err := hotel.Price.TotalRate.Value.Float64()
	if err != nil || amount < 0 {
		return dto.HotelOption{}, false
	}

	currency := hotel.Price.TotalRate.Currency

	return dto.HotelOption{
		Name: hotel.Name,
		Price: dto.Price{
			Amount:    amount,
			Currency:  currency,
			Formatted: utils.FormatPrice(currency, amount),
		},
		ThumbnailURL: hotel.ThumbnailURL,
		DetailsURL:   hotel.DetailsURL,
	}, true
}
