package qpx

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/remote"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/utils"
)

const (
	ServiceName = "flight"
	// TimeLayout is how QPX writes leg departure and arrival times.
	TimeLayout = "2006-01-02T15:04-07:00"
)

// SearchRequest describes one round trip between two airports.
type SearchRequest struct {
	Origin            string
	Destination       string
	DepartureDate     time.Time
	ReturnDate        time.Time
	Passengers        int
	MaxPrice          float64
	EarliestDeparture string
	LatestDeparture   string
}

type Client struct {
	remote *remote.Client
}

func NewClient(config remote.Config) *Client {
	return &Client{
		remote: remote.NewClient(ServiceName, config),
	}
}

// SearchFlights asks for the single cheapest round trip under MaxPrice.
func (c *Client) SearchFlights(ctx context.Context, req SearchRequest) (Response, error) {
	query := url.Values{}
	query.Set("key", c.remote.APIKey)

	endpoint := fmt.Sprintf("%s/trips/search?%s", c.remote.BaseURL, query.Encode())

	var response Response
	if err := c.remote.DoJSON(ctx, http.MethodPost, endpoint, NewTripsRequest(req), nil, &response); err != nil {
		return Response{}, fmt.Errorf("search flights %s-%s: %w", req.Origin, req.Destination, err)
	}

	return response, nil
}

// NewTripsRequest builds the wire body: outbound slice with the departure
// window, return slice without one, one solution capped at MaxPrice.
func NewTripsRequest(req SearchRequest) TripsRequest {
	body := TripsRequestBody{
		Passengers: Passengers{AdultCount: req.Passengers},
		Slice: []SliceInput{
			{
				Origin:      req.Origin,
				Destination: req.Destination,
				Date:        req.DepartureDate.Format(dto.DateLayout),
				PermittedDepartureTime: &TimeOfDayRange{
					EarliestTime: req.EarliestDeparture,
					LatestTime:   req.LatestDeparture,
				},
			},
			{
				Origin:      req.Destination,
				Destination: req.Origin,
				Date:        req.ReturnDate.Format(dto.DateLayout),
			},
		},
		Solutions: 1,
	}

	if req.MaxPrice > 0 {
		body.MaxPrice = fmt.Sprintf("USD%.2f", req.MaxPrice)
	}

	return TripsRequest{Request: body}
}

// NormalizeFlight turns the first trip option into a round trip.
// The result is all or nothing: any missing piece makes it absent.
func NormalizeFlight(response Response) (dto.FlightOption, bool) {
	if len(response.Trips.TripOption) == 0 {
		return dto.FlightOption{}, false
	}

	trip := response.Trips.TripOption[0]
	if len(trip.Slice) < 2 || len(trip.Pricing) == 0 {
		return dto.FlightOption{}, false
	}

	currency, amount, err := utils.SplitCurrencyAmount(trip.Pricing[0].SaleTotal)
	if err != nil {
		return dto.FlightOption{}, false
	}

	outbound, ok := normalizeSlice(trip.Slice[0])
	if !ok {
		return dto.FlightOption{}, false
	}

	inbound, ok := normalizeSlice(trip.Slice[1])
	if !ok {
		return dto.FlightOption{}, false
	}

	return dto.FlightOption{
		Outbound: outbound,
		Return:   inbound,
		Price: dto.Price{
			Amount:    amount,
			Currency:  currency,
			Formatted: utils.FormatPrice(currency, amount),
		},
	}, true
}

// normalizeSlice reads carrier and departure from the first segment and
// arrival from the last one, so connections report the whole journey.
func normalizeSlice(slice Slice) (dto.FlightLeg, bool) {
	if len(slice.Segment) == 0 {
		return dto.FlightLeg{}, false
	}

	first := slice.Segment[0]
	last := slice.Segment[len(slice.Segment)-1]
	if len(first.Leg) == 0 || len(last.Leg) == 0 {
		return dto.FlightLeg{}, false
	}
	if first.Flight.Carrier == "" || first.Flight.Number == "" {
		return dto.FlightLeg{}, false
	}

	departLeg := first.Leg[0]
	arriveLeg := last.Leg[len(last.Leg)-1]
	if departLeg.Origin == "" || arriveLeg.Destination == "" {
		return dto.FlightLeg{}, false
	}

	departTime, err := time.Parse(TimeLayout, departLeg.DepartureTime)
	if err != nil {
		return dto.FlightLeg{}, false
	}

	arriveTime, err := time.Parse(TimeLayout, arriveLeg.ArrivalTime)
	if err != nil {
		return dto.FlightLeg{}, false
	}

	minutes := int(arriveTime.Sub(departTime).Minutes())
	if minutes < 0 {
		return dto.FlightLeg{}, false
	}

	return dto.FlightLeg{
		Carrier:      first.Flight.Carrier,
		FlightNumber: first.Flight.Number,
		Departure: dto.Departure{
			Airport:   departLeg.Origin,
			Datetime:  departLeg.DepartureTime,
			Timestamp: departTime.Unix(),
		},
		Arrival: dto.Arrival{
			Airport:   arriveLeg.Destination,
			Datetime:  arriveLeg.ArrivalTime,
			Timestamp: arriveTime.Unix(),
		},
		Duration: dto.Duration{
			TotalMinutes: minutes,
			Formatted:    utils.ConvertMinutesToDuration(int64(minutes)),
		},
	}, true
}
