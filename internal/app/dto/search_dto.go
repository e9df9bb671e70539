package dto

import "time"

// DomesticCountry is the only country flights are searched for.
const DomesticCountry = "USA"

// DateLayout is the calendar date format every remote service accepts.
const DateLayout = "2006-01-02"

type Event struct {
	Name      string    `json:"name"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Country   string    `json:"country"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	EventType string    `json:"event_type"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	ImageURL  string    `json:"image_url"`
}

// IsDomestic reports whether flights can be searched for the event.
func (e Event) IsDomestic() bool {
	return e.Country == DomesticCountry
}

func (e Event) Coordinates() Coordinates {
	return Coordinates{Latitude: e.Latitude, Longitude: e.Longitude}
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type UserLocation struct {
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Airports    []Airport    `json:"airports,omitempty"`
}

type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type Departure struct {
	Airport   string `json:"airport"`
	Datetime  string `json:"datetime"`
	Timestamp int64  `json:"timestamp"`
}

type Arrival struct {
	Airport   string `json:"airport"`
	Datetime  string `json:"datetime"`
	Timestamp int64  `json:"timestamp"`
}

type Duration struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

type FlightLeg struct {
	Carrier      string    `json:"carrier"`
	FlightNumber string    `json:"flight_number"`
	Departure    Departure `json:"departure"`
	Arrival      Arrival   `json:"arrival"`
	Duration     Duration  `json:"duration"`
}

// FlightOption is a priced round trip; the price covers both legs.
type FlightOption struct {
	Outbound FlightLeg `json:"outbound"`
	Return   FlightLeg `json:"return"`
	Price    Price     `json:"price"`
}

type HotelOption struct {
	Name         string `json:"name"`
	Price        Price  `json:"price"`
	ThumbnailURL string `json:"thumbnail_url"`
	DetailsURL   string `json:"details_url"`
}

type Progress struct {
	Total     int     `json:"total"`
	Remaining int     `json:"remaining"`
	Percent   float64 `json:"percent"`
	Phase     string  `json:"phase"`
}

type EventResult struct {
	Event           Event         `json:"event"`
	ArrivalAirports []Airport     `json:"arrival_airports,omitempty"`
	Flight          *FlightOption `json:"flight,omitempty"`
	Hotel           *HotelOption  `json:"hotel,omitempty"`
}

// SearchSnapshot is the state of one search session at a point in time.
type SearchSnapshot struct {
	ID            string        `json:"id"`
	State         string        `json:"state"`
	Progress      Progress      `json:"progress"`
	User          UserLocation  `json:"user"`
	Events        []EventResult `json:"events"`
	FailureReason string        `json:"failure_reason,omitempty"`
	StartedAt     time.Time     `json:"started_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type EventsResponse struct {
	Events []Event `json:"events"`
}
