package trip

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/barrier"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/remote/airport"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/remote/expedia"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/remote/geocoding"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/remote/qpx"
)

type State string

const (
	StateIdle                 State = "idle"
	StateAwaitingUserLocation State = "awaiting_user_location"
	StateAwaitingUserAirports State = "awaiting_user_airports"
	StateAwaitingEventData    State = "awaiting_event_data"
	StateComplete             State = "complete"
	StateFailed               State = "failed"
	StateCancelled            State = "cancelled"
)

// Terminal reports whether no further notifications follow the state.
func (s State) Terminal() bool {
	return s == StateComplete || s == StateFailed || s == StateCancelled
}

type Geocoder interface {
	Geocode(ctx context.Context, zipCode string) (geocoding.Response, error)
}

type AirportLocator interface {
	NearbyAirports(ctx context.Context, location dto.Coordinates) (airport.Response, error)
}

type FlightSearcher interface {
	SearchFlights(ctx context.Context, req qpx.SearchRequest) (qpx.Response, error)
}

type HotelSearcher interface {
	SearchHotels(ctx context.Context, req expedia.SearchRequest) (expedia.Response, error)
}

// Remote groups the services a search talks to.
type Remote struct {
	Geocoder Geocoder
	Airports AirportLocator
	Flights  FlightSearcher
	Hotels   HotelSearcher
}

type Options struct {
	// ID identifies the session; a random UUID is used when empty.
	ID  string
	Now func() time.Time
}

// Session runs one trip search: locate the user, find their airports, then
// fan out a flight and a hotel search per selected event. Every leaf request
// is counted down on a barrier; the last one completes the session.
type Session struct {
	id       string
	req      dto.TripRequest
	events   []dto.Event
	remote   Remote
	listener Listener
	store    *Store
	barrier  *barrier.Barrier
	now      func() time.Time

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.Mutex
	state     State
	progress  dto.Progress
	failure   error
	startedAt time.Time
	updatedAt time.Time
	closed    bool

	notifications chan func()
	workers       sync.WaitGroup
	done          chan struct{}
}

// StartSearch validates the request and starts the search in the background.
// Nothing is sent to any remote service when it returns an error.
func StartSearch(ctx context.Context,
	remote Remote,
	req dto.TripRequest,
	events []dto.Event,
	listener Listener,
	opts Options,
) (*Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return nil, ErrNoEvents
	}

	seen := make(map[string]struct{}, len(events))
	for _, event := range events {
		if _, ok := seen[event.Name]; ok {
			return nil, fmt.Errorf("%q: %w", event.Name, ErrDuplicateEvent)
		}
		seen[event.Name] = struct{}{}
	}

	s := newSession(ctx, remote, req, events, listener, opts)

	s.workers.Add(1)
	go s.run()

	go s.dispatch()
	go func() {
		s.workers.Wait()
		s.cancel()

		s.mu.Lock()
		s.closed = true
		close(s.notifications)
		s.mu.Unlock()
	}()

	return s, nil
}

func newSession(ctx context.Context,
	remote Remote,
	req dto.TripRequest,
	events []dto.Event,
	listener Listener,
	opts Options,
) *Session {
	if listener == nil {
		listener = nopListener{}
	}

	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	total := 2 + 2*len(events)

	s := &Session{
		id:       id,
		req:      req,
		events:   append([]dto.Event{}, events...),
		remote:   remote,
		listener: listener,
		store:    NewStore(events),
		now:      now,
		state:    StateIdle,
		progress: ComputeProgress(total, total, PhaseLocating),
		// every arrival, flight and terminal notification fits without blocking
		notifications: make(chan func(), 2*total+2),
		done:          make(chan struct{}),
	}
	s.barrier = barrier.New(total, s.complete)
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.startedAt = now()
	s.updatedAt = s.startedAt

	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Session) Progress() dto.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.progress
}

// Err is the reason the session failed or was cancelled.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.failure
}

// HotelFor returns the hotel found for an event, if one was found yet.
func (s *Session) HotelFor(eventName string) (dto.HotelOption, bool) {
	return s.store.Hotel(eventName)
}

func (s *Session) FlightFor(eventName string) (dto.FlightOption, bool) {
	return s.store.Flight(eventName)
}

func (s *Session) Snapshot() dto.SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := dto.SearchSnapshot{
		ID:        s.id,
		State:     string(s.state),
		Progress:  s.progress,
		User:      s.store.User(),
		Events:    s.store.Results(),
		StartedAt: s.startedAt,
		UpdatedAt: s.updatedAt,
	}
	if s.failure != nil {
		snapshot.FailureReason = s.failure.Error()
	}

	return snapshot
}

// Cancel aborts the search. Requests in flight settle without results and
// listeners get Failed with ErrSearchCancelled, unless the session already ended.
func (s *Session) Cancel() {
	s.mu.Lock()
	if !s.state.Terminal() {
		s.finish(StateCancelled, ErrSearchCancelled)
	}
	s.mu.Unlock()

	s.cancel()
}

// Done is closed once every request has settled and every notification was delivered.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

func (s *Session) run() {
	defer s.workers.Done()

	s.setState(StateAwaitingUserLocation)

	location, err := s.remote.Geocoder.Geocode(s.ctx, s.req.ZipCode)
	if s.aborted() {
		return
	}

	var (
		userLocation dto.Coordinates
		ok           bool
	)
	if err == nil {
		userLocation, ok = geocoding.NormalizeLocation(location)
	}
	if !ok {
		s.fail(ErrLocationNotFound, err)
		return
	}

	s.arrive(PhaseNearbyAirports, func() {
		s.state = StateAwaitingUserAirports
		s.storeErr(s.store.SetUserCoordinates(userLocation))
	})

	nearby, err := s.remote.Airports.NearbyAirports(s.ctx, userLocation)
	if s.aborted() {
		return
	}

	var userAirports []dto.Airport
	ok = false
	if err == nil {
		userAirports, ok = airport.NormalizeAirports(nearby)
	}
	if !ok {
		s.fail(ErrNoNearbyAirports, err)
		return
	}

	s.arrive(PhaseYourFlights, func() {
		s.state = StateAwaitingEventData
		s.storeErr(s.store.SetUserAirports(userAirports))
	})

	for _, event := range s.events {
		s.workers.Add(1)
		go s.searchEvent(event, userAirports[0])
	}
}

// searchEvent finds the airports near one event, then searches its hotel
// and, for domestic events with a known airport, its flight.
func (s *Session) searchEvent(event dto.Event, origin dto.Airport) {
	defer s.workers.Done()

	var (
		arrivals []dto.Airport
		ok       bool
	)

	response, err := s.remote.Airports.NearbyAirports(s.ctx, event.Coordinates())
	if err == nil {
		arrivals, ok = airport.NormalizeAirports(response)
	} else {
		slog.WarnContext(s.ctx, "failed to find event airports",
			slog.String("event", event.Name), slog.String("error", err.Error()))
	}

	if ok {
		s.storeErr(s.store.SetArrivalAirports(event.Name, arrivals))
	}

	s.workers.Add(1)
	go s.searchHotel(event)

	switch {
	case !event.IsDomestic():
		s.arrive(PhaseInternational, nil)
	case !ok:
		s.arrive(PhaseNoEventAirport, nil)
	default:
		s.searchFlight(event, origin, arrivals[0])
	}
}

func (s *Session) searchFlight(event dto.Event, origin, destination dto.Airport) {
	response, err := s.remote.Flights.SearchFlights(s.ctx, qpx.SearchRequest{
		Origin:            origin.Code,
		Destination:       destination.Code,
		DepartureDate:     event.StartDate,
		ReturnDate:        event.EndDate,
		Passengers:        s.req.PassengerCount(),
		MaxPrice:          s.req.BudgetAmount(),
		EarliestDeparture: s.req.EarliestDeparture(),
		LatestDeparture:   s.req.LatestDeparture(),
	})
	if err != nil {
		slog.WarnContext(s.ctx, "failed to search flights",
			slog.String("event", event.Name), slog.String("error", err.Error()))
		s.arrive(PhaseFlights, nil)
		return
	}

	flight, ok := qpx.NormalizeFlight(response)
	s.arrive(PhaseFlights, func() {
		if !ok {
			return
		}

		if err := s.store.SetFlight(event.Name, flight); err != nil {
			s.storeErr(err)
			return
		}

		s.notify(func() { s.listener.FlightReady(s, event.Name, flight) })
	})
}

func (s *Session) searchHotel(event dto.Event) {
	defer s.workers.Done()

	response, err := s.remote.Hotels.SearchHotels(s.ctx, expedia.SearchRequest{
		Location: event.Coordinates(),
		CheckIn:  event.StartDate,
		CheckOut: event.EndDate,
	})
	if err != nil {
		slog.WarnContext(s.ctx, "failed to search hotels",
			slog.String("event", event.Name), slog.String("error", err.Error()))
		s.arrive(PhaseHotel, nil)
		return
	}

	hotel, ok := expedia.NormalizeHotel(response)
	s.arrive(PhaseHotel, func() {
		if ok {
			s.storeErr(s.store.SetHotel(event.Name, hotel))
		}
	})
}

// arrive settles one request: apply records its result, then the barrier
// counts it down and progress is published. Both run under the session lock,
// so notifications queue in the order the counter moved.
func (s *Session) arrive(label string, apply func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if apply != nil && !s.state.Terminal() {
		apply()
	}

	_, err := s.barrier.ArriveFunc(func(remaining int) {
		s.progress = ComputeProgress(s.barrier.Total(), remaining, label)
		s.updatedAt = s.now()

		if s.state.Terminal() {
			return
		}

		progress := s.progress
		s.notify(func() { s.listener.ProgressChanged(s, progress) })
	})
	if err != nil {
		slog.ErrorContext(s.ctx, "search counted more results than requests", slog.String("error", err.Error()))
	}
}

// complete runs on the barrier's last arrival, with the session lock held.
func (s *Session) complete() {
	if s.state.Terminal() {
		return
	}

	if s.ctx.Err() != nil {
		s.finish(StateCancelled, ErrSearchCancelled)
		return
	}

	s.state = StateComplete
	s.updatedAt = s.now()
	s.notify(func() { s.listener.Completed(s) })
}

func (s *Session) fail(sentinel error, cause error) {
	err := sentinel
	if cause != nil {
		err = fmt.Errorf("%w: %w", sentinel, cause)
	}

	slog.WarnContext(s.ctx, "search failed", slog.String("error", err.Error()))

	s.mu.Lock()
	if !s.state.Terminal() {
		s.finish(StateFailed, err)
	}
	s.mu.Unlock()

	s.cancel()
}

// finish moves to a terminal state and reports it. Callers hold the lock.
func (s *Session) finish(state State, err error) {
	s.state = state
	s.failure = err
	s.updatedAt = s.now()
	s.notify(func() { s.listener.Failed(s, err) })
}

// aborted reports whether the session context ended, marking the session
// cancelled when nobody else has.
func (s *Session) aborted() bool {
	if s.ctx.Err() == nil {
		return false
	}

	s.mu.Lock()
	if !s.state.Terminal() {
		s.finish(StateCancelled, ErrSearchCancelled)
	}
	s.mu.Unlock()

	return true
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Terminal() {
		s.state = state
		s.updatedAt = s.now()
	}
}

func (s *Session) storeErr(err error) {
	if err != nil {
		slog.WarnContext(s.ctx, "ignored repeated trip result", slog.String("error", err.Error()))
	}
}

// notify queues a listener call. Callers hold the lock.
func (s *Session) notify(fn func()) {
	if s.closed {
		return
	}

	select {
	case s.notifications <- fn:
	default:
		slog.ErrorContext(s.ctx, "search notification dropped", slog.String("session_id", s.id))
	}
}

func (s *Session) dispatch() {
	defer close(s.done)

	for fn := range s.notifications {
		fn()
	}
}
