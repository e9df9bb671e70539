package qpx

// TripsRequest is the QPX Express search body.
type TripsRequest struct {
	Request TripsRequestBody `json:"request"`
}

type TripsRequestBody struct {
	Passengers Passengers   `json:"passengers"`
	Slice      []SliceInput `json:"slice"`
	Solutions  int          `json:"solutions"`
	MaxPrice   string       `json:"maxPrice,omitempty"`
}

type Passengers struct {
	AdultCount int `json:"adultCount"`
}

type SliceInput struct {
	Origin                 string          `json:"origin"`
	Destination            string          `json:"destination"`
	Date                   string          `json:"date"`
	PermittedDepartureTime *TimeOfDayRange `json:"permittedDepartureTime,omitempty"`
}

type TimeOfDayRange struct {
	EarliestTime string `json:"earliestTime"`
	LatestTime   string `json:"latestTime"`
}

// Response is the QPX Express search answer. Only the fields the
// normalizer reads are mapped.
type Response struct {
	Kind  string `json:"kind"`
	Trips Trips  `json:"trips"`
}

type Trips struct {
	RequestID  string       `json:"requestId"`
	TripOption []TripOption `json:"tripOption"`
}

type TripOption struct {
	ID        string    `json:"id"`
	SaleTotal string    `json:"saleTotal"`
	Slice     []Slice   `json:"slice"`
	Pricing   []Pricing `json:"pricing"`
}

type Slice struct {
	Duration int       `json:"duration"`
	Segment  []Segment `json:"segment"`
}

type Segment struct {
	Duration int    `json:"duration"`
	Flight   Flight `json:"flight"`
	Leg      []Leg  `json:"leg"`
}

type Flight struct {
	Carrier string `json:"carrier"`
	Number  string `json:"number"`
}

type Leg struct {
	ArrivalTime   string `json:"arrivalTime"`
	DepartureTime string `json:"departureTime"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Duration      int    `json:"duration"`
}

type Pricing struct {
	SaleTotal string `json:"saleTotal"`
}
