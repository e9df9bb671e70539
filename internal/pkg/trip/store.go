package trip

import (
	"fmt"
	"sync"

	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
)

// EventState is what a search has learned about one selected event.
type EventState struct {
	Event           dto.Event
	ArrivalAirports []dto.Airport
	Flight          *dto.FlightOption
	Hotel           *dto.HotelOption
}

// Store accumulates the partial results of one search. Every field is
// written at most once; later writes return ErrAlreadySet and change nothing.
type Store struct {
	mu           sync.RWMutex
	coordinates  *dto.Coordinates
	userAirports []dto.Airport
	order        []string
	events       map[string]*EventState
}

func NewStore(events []dto.Event) *Store {
	s := &Store{
		order:  make([]string, 0, len(events)),
		events: make(map[string]*EventState, len(events)),
	}

	for _, event := range events {
		if _, ok := s.events[event.Name]; ok {
			continue
		}

		s.order = append(s.order, event.Name)
		s.events[event.Name] = &EventState{Event: event}
	}

	return s
}

func (s *Store) SetUserCoordinates(coordinates dto.Coordinates) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.coordinates != nil {
		return fmt.Errorf("user coordinates: %w", ErrAlreadySet)
	}

	s.coordinates = &coordinates

	return nil
}

func (s *Store) UserCoordinates() (dto.Coordinates, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.coordinates == nil {
		return dto.Coordinates{}, false
	}

	return *s.coordinates, true
}

// SetUserAirports stores the airports near the user, nearest first.
func (s *Store) SetUserAirports(airports []dto.Airport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userAirports != nil {
		return fmt.Errorf("user airports: %w", ErrAlreadySet)
	}

	s.userAirports = append([]dto.Airport{}, airports...)

	return nil
}

func (s *Store) UserAirports() []dto.Airport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]dto.Airport(nil), s.userAirports...)
}

func (s *Store) SetArrivalAirports(eventName string, airports []dto.Airport) error {
	return s.update(eventName, "arrival airports", func(e *EventState) bool {
		if e.ArrivalAirports != nil {
			return false
		}

		e.ArrivalAirports = append([]dto.Airport{}, airports...)

		return true
	})
}

func (s *Store) SetFlight(eventName string, flight dto.FlightOption) error {
	return s.update(eventName, "flight", func(e *EventState) bool {
		if e.Flight != nil {
			return false
		}

		e.Flight = &flight

		return true
	})
}

func (s *Store) SetHotel(eventName string, hotel dto.HotelOption) error {
	return s.update(eventName, "hotel", func(e *EventState) bool {
		if e.Hotel != nil {
			return false
		}

		e.Hotel = &hotel

		return true
	})
}

func (s *Store) update(eventName, field string, set func(e *EventState) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventName]
	if !ok {
		return fmt.Errorf("%s for %q: %w", field, eventName, ErrEventNotSelected)
	}

	if !set(event) {
		return fmt.Errorf("%s for %q: %w", field, eventName, ErrAlreadySet)
	}

	return nil
}

// Hotel returns the hotel stored for an event, if any.
func (s *Store) Hotel(eventName string) (dto.HotelOption, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[eventName]
	if !ok || event.Hotel == nil {
		return dto.HotelOption{}, false
	}

	return *event.Hotel, true
}

func (s *Store) Flight(eventName string) (dto.FlightOption, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[eventName]
	if !ok || event.Flight == nil {
		return dto.FlightOption{}, false
	}

	return *event.Flight, true
}

func (s *Store) User() dto.UserLocation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var user dto.UserLocation
	if s.coordinates != nil {
		coordinates := *s.coordinates
		user.Coordinates = &coordinates
	}
	user.Airports = append([]dto.Airport(nil), s.userAirports...)

	return user
}

// Results lists every selected event in selection order.
func (s *Store) Results() []dto.EventResult {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]dto.EventResult, 0, len(s.order))
	for _, name := range s.order {
		event := s.events[name]

		result := dto.EventResult{
			Event:           event.Event,
			ArrivalAirports: append([]dto.Airport(nil), event.ArrivalAirports...),
		}
		if event.Flight != nil {
			flight := *event.Flight
			result.Flight = &flight
		}
		if event.Hotel != nil {
			hotel := *event.Hotel
			result.Hotel = &hotel
		}

		results = append(results, result)
	}

	return results
}
