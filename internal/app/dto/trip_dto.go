package dto

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/exception"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/utils"
)

// TripRequest holds the traveller constraints exactly as typed into the search form.
type TripRequest struct {
	ZipCode                 string `json:"zip_code" validate:"required,zipcode"`
	Budget                  string `json:"budget" validate:"required,positive_amount"`
	Passengers              string `json:"passengers" validate:"required,len=1,number,ne=0"`
	EarliestDepartureHour   string `json:"earliest_departure_hour" validate:"required,hour_of_day"`
	EarliestDepartureMinute string `json:"earliest_departure_minute" validate:"required,minute_of_hour"`
	LatestDepartureHour     string `json:"latest_departure_hour" validate:"required,hour_of_day"`
	LatestDepartureMinute   string `json:"latest_departure_minute" validate:"required,minute_of_hour"`
}

// ValidationResult is valid only when every field check passed.
type ValidationResult struct {
	Valid   bool          `json:"valid"`
	Reasons []FieldReason `json:"reasons,omitempty"`
}

// ValidateTrip runs every field check of req independently.
func ValidateTrip(req TripRequest) ValidationResult {
	reasons, err := ValidateAll(req)
	if err != nil {
		return ValidationResult{Reasons: []FieldReason{{Reason: err.Error()}}}
	}

	return ValidationResult{
		Valid:   len(reasons) == 0,
		Reasons: reasons,
	}
}

func (t TripRequest) Validate() error {
	return resultToError(ValidateTrip(t))
}

// BudgetAmount returns the budget ceiling in USD. Only meaningful after validation.
func (t TripRequest) BudgetAmount() float64 {
	amount, _ := strconv.ParseFloat(t.Budget, 64)
	return amount
}

// PassengerCount returns the number of adult passengers. Only meaningful after validation.
func (t TripRequest) PassengerCount() int {
	count, _ := strconv.Atoi(t.Passengers)
	return count
}

// EarliestDeparture returns the start of the departure window as HH:MM.
func (t TripRequest) EarliestDeparture() string {
	return clock(t.EarliestDepartureHour, t.EarliestDepartureMinute)
}

// LatestDeparture returns the end of the departure window as HH:MM.
func (t TripRequest) LatestDeparture() string {
	return clock(t.LatestDepartureHour, t.LatestDepartureMinute)
}

func clock(hour, minute string) string {
	h, _ := strconv.Atoi(hour)
	m, _ := strconv.Atoi(minute)

	return utils.FormatClock(h, m)
}

// SearchRequest starts a search for the selected catalog events.
type SearchRequest struct {
	Trip   TripRequest `json:"trip"`
	Events []string    `json:"events" validate:"required,min=1,unique,dive,required"`
}

func (s *SearchRequest) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchRequest) Validate() error {
	reasons, err := ValidateAll(s)
	if err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return resultToError(ValidationResult{Valid: len(reasons) == 0, Reasons: reasons})
}

func resultToError(result ValidationResult) error {
	if result.Valid {
		return nil
	}

	details := make([]string, len(result.Reasons))
	for i, reason := range result.Reasons {
		details[i] = reason.Reason
	}

	return exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    details[0],
		Details:    details,
	}
}

// SearchIDRequest addresses a single search session.
type SearchIDRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

func (s *SearchIDRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// HotelRequest looks up the hotel kept for one event of a search.
type HotelRequest struct {
	SearchID  string `json:"search_id" validate:"required,uuid"`
	EventName string `json:"event_name" validate:"required"`
}

func (h *HotelRequest) Validate() error {
	if err := ValidateSingleError(h); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}
