package catalog

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/exception"
	"github.com/samber/lo"
)

var ErrUnknownEvent = exception.ApplicationError{
	Message:    "unknown event",
	StatusCode: http.StatusBadRequest,
}

// Catalog is the fixed list of events a user can pick from.
type Catalog struct {
	events []dto.Event
}

func New(events []dto.Event) *Catalog {
	return &Catalog{events: events}
}

// Default returns the Capcom Pro Tour season catalog.
func Default() *Catalog {
	return New(proTourEvents)
}

func (c *Catalog) All() []dto.Event {
	return append([]dto.Event(nil), c.events...)
}

func (c *Catalog) Find(name string) (dto.Event, bool) {
	return lo.Find(c.events, func(e dto.Event) bool {
		return e.Name == name
	})
}

// Resolve maps selected event names to catalog entries, keeping the selection order.
func (c *Catalog) Resolve(names []string) ([]dto.Event, error) {
	unknown := lo.Filter(names, func(name string, _ int) bool {
		_, ok := c.Find(name)
		return !ok
	})
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEvent, unknown)
	}

	return lo.Map(names, func(name string, _ int) dto.Event {
		event, _ := c.Find(name)
		return event
	}), nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var proTourEvents = []dto.Event{
	{
		Name: "Final Round", City: "Atlanta", State: "GA", Country: "USA",
		StartDate: date(2016, time.October, 18), EndDate: date(2016, time.October, 20),
		EventType: "Premier", Latitude: 33.748995, Longitude: -84.387982,
		ImageURL: "http://capcomprotour.com/wp-content/uploads/2014/02/final-round.jpg",
	},
	{
		Name: "NorCal Regionals", City: "Sacramento", State: "CA", Country: "USA",
		StartDate: date(2016, time.October, 25), EndDate: date(2016, time.October, 27),
		EventType: "Premier", Latitude: 38.581572, Longitude: -121.4944,
		ImageURL: "http://capcomprotour.com/wp-content/uploads/2016/02/norcal-regionals-2016.jpg",
	},
	{
		Name: "West Coast Warzone", City: "Los Angeles", State: "CA", Country: "USA",
		StartDate: date(2016, time.October, 15), EndDate: date(2016, time.October, 17),
		EventType: "Ranking", Latitude: 34.052234, Longitude: -118.243685,
		ImageURL: "http://capcomprotour.com/wp-content/uploads/2016/02/west-coast-warzone-5.jpg",
	},
	{
		Name: "Texas Showdown", City: "Houston", State: "TX", Country: "USA",
		StartDate: date(2016, time.October, 22), EndDate: date(2016, time.October, 24),
		EventType: "Ranking", Latitude: 29.760427, Longitude: -95.369803,
		ImageURL: "http://capcomprotour.com/wp-content/uploads/2016/02/ts-logo-400x200.jpg",
	},
	{
		Name: "Dreamhack Austin", City: "Austin", State: "TX", Country: "USA",
		StartDate: date(2016, time.November, 6), EndDate: date(2016, time.November, 8),
		EventType: "Ranking", Latitude: 30.267153, Longitude: -97.743061,
		ImageURL: "http://capcomprotour.com/wp-content/uploads/2014/02/dreamhack.jpg",
	},
	{
		Name: "Combo Breaker", City: "Chicago", State: "IL", Country: "USA",
		StartDate: date(2016, time.November, 27), EndDate: date(2016, time.November, 29),
		EventType: "Ranking", Latitude: 41.878114, Longitude: -87.629798,
		ImageURL: "http://capcomprotour.com/wp-content/uploads/2015/02/combo-breaker.jpg",
	},
	{
		Name: "Community Effort Orlando", City: "Orlando", State: "FL", Country: "USA",
		StartDate: date(2016, time.October, 24), EndDate: date(2016, time.October, 26),
		EventType: "Premier", Latitude: 28.5383355, Longitude: -81.3792365,
		ImageURL: "http://capcomprotour.com/wp-content/uploads/2014/02/community-effort-orlando.jpg",
	},
	{
		Name: "Evolution Championship Series", City: "Las Vegas", State: "NV", Country: "USA",
		StartDate: date(2016, time.October, 15), EndDate: date(2016, time.October, 17),
		EventType: "Championship", Latitude: 36.1699412, Longitude: -115.1398296,
		ImageURL: "http://capcomprotour.com/wp-content/uploads/2014/02/evo.jpg",
	},
	{
		Name: "Defend the North", City: "White Plains", State: "NY", Country: "USA",
		StartDate: date(2016, time.October, 29), EndDate: date(2016, time.October, 31),
		EventType: "Ranking", Latitude: 41.0339862, Longitude: -73.7629097,
		ImageURL: "http://capcomprotour.com/wp-content/uploads/2015/02/defend-the-north.jpg",
	},
	{
		Name: "Summer Jam", City: "Philadelphia", State: "PA", Country: "USA",
		StartDate: date(2016, time.October, 19), EndDate: date(2016, time.October, 21),
		EventType: "Ranking", Latitude: 39.9525839, Longitude: -75.1652215,
		ImageURL: "http://capcomprotour.com/wp-content/uploads/2016/02/summer-jam.jpg",
	},
	{
		Name: "Absolute Battle", City: "Dallas", State: "TX", Country: "USA",
		StartDate: date(2016, time.October, 26), EndDate: date(2016, time.October, 28),
		EventType: "Ranking", Latitude: 32.7766642, Longitude: -96.7969879,
		ImageURL: "http://capcomprotour.com/wp-content/uploads/2016/02/absolute-battle-7.jpg",
	},
	{
		Name: "East Coast Throwdown", City: "Morristown", State: "NJ", Country: "USA",
		StartDate: date(2016, time.October, 13), EndDate: date(2016, time.October, 14),
		EventType: "Ranking", Latitude: 40.7967667, Longitude: -74.4815438,
		ImageURL: "http://capcomprotour.com/wp-content/uploads/2014/04/east-coast-throwdown.jpg",
	},
	{
		Name: "The Fall Classic", City: "Raleigh", State: "NC", Country: "USA",
		StartDate: date(2016, time.October, 7), EndDate: date(2016, time.October, 9),
		EventType: "Ranking", Latitude: 35.7795897, Longitude: -78.6381787,
		ImageURL: "http://capcomprotour.com/wp-content/uploads/2014/02/the-fall-classic.jpg",
	},
	{
		Name: "SoCal Regionals", City: "Los Angeles", State: "CA", Country: "USA",
		StartDate: date(2016, time.October, 14), EndDate: date(2016, time.October, 16),
		EventType: "Premier", Latitude: 34.0522342, Longitude: -118.2436849,
		ImageURL: "http://capcomprotour.com/wp-content/uploads/2014/03/socal-regionals-2014.jpg",
	},
}
