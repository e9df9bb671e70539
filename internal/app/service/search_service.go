package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/logger"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/metrics"
	"github.com/ijalalfrz/event-trip-search-service/internal/pkg/trip"
	"github.com/samber/lo"
)

type SnapshotCacher interface {
	SetSnapshot(ctx context.Context, snapshot dto.SearchSnapshot, expiration time.Duration) error
	GetSnapshot(ctx context.Context, searchID string) (dto.SearchSnapshot, error)
}

type EventCatalog interface {
	All() []dto.Event
	Resolve(names []string) ([]dto.Event, error)
}

// SearchService runs trip searches in the background. Live sessions are
// kept in memory; every change is also written to the snapshot cache so a
// search stays readable once its session is gone.
type SearchService struct {
	Remote             trip.Remote
	Catalog            EventCatalog
	Cache              SnapshotCacher
	SnapshotExpiration time.Duration
	MaxEvents          int

	baseCtx  context.Context
	mu       sync.RWMutex
	sessions map[string]*trip.Session
}

// NewSearchService creates the service. Sessions outlive the request that
// started them and run on ctx instead.
func NewSearchService(ctx context.Context,
	remote trip.Remote,
	catalog EventCatalog,
	cache SnapshotCacher,
	snapshotExpiration time.Duration,
	maxEvents int,
) *SearchService {
	return &SearchService{
		Remote:             remote,
		Catalog:            catalog,
		Cache:              cache,
		SnapshotExpiration: snapshotExpiration,
		MaxEvents:          maxEvents,
		baseCtx:            ctx,
		sessions:           make(map[string]*trip.Session),
	}
}

// ListEvents returns the event catalog.
func (s *SearchService) ListEvents(_ context.Context) dto.EventsResponse {
	return dto.EventsResponse{Events: s.Catalog.All()}
}

// StartSearch validates the trip, resolves the selected events and starts a
// search session. The returned snapshot is the session's initial state.
func (s *SearchService) StartSearch(ctx context.Context, req dto.SearchRequest) (dto.SearchSnapshot, error) {
	if s.MaxEvents > 0 && len(req.Events) > s.MaxEvents {
		return dto.SearchSnapshot{}, fmt.Errorf("%w: at most %d", ErrTooManyEvents, s.MaxEvents)
	}

	events, err := s.Catalog.Resolve(req.Events)
	if err != nil {
		return dto.SearchSnapshot{}, fmt.Errorf("failed to resolve events: %w", err)
	}

	id := uuid.NewString()

	sessionCtx := logger.WithSessionID(s.baseCtx, id)
	if requestID, ok := ctx.Value(logger.RequestIDKey).(string); ok {
		sessionCtx = context.WithValue(sessionCtx, logger.RequestIDKey, requestID)
	}

	session, err := trip.StartSearch(sessionCtx, s.Remote, req.Trip, events,
		&sessionListener{service: s, ctx: sessionCtx}, trip.Options{ID: id})
	if err != nil {
		return dto.SearchSnapshot{}, fmt.Errorf("failed to start search: %w", err)
	}

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	metrics.ActiveSearches.Inc()
	slog.InfoContext(sessionCtx, "search started",
		slog.Int("events", len(events)), slog.String("zip_code", req.Trip.ZipCode))

	go s.release(sessionCtx, session)

	return session.Snapshot(), nil
}

// GetSearch returns the current state of a search.
func (s *SearchService) GetSearch(ctx context.Context, id string) (dto.SearchSnapshot, error) {
	if session, ok := s.session(id); ok {
		return session.Snapshot(), nil
	}

	snapshot, err := s.Cache.GetSnapshot(ctx, id)
	if errors.Is(err, trip.ErrSnapshotNotFound) {
		return dto.SearchSnapshot{}, ErrSearchNotFound
	}
	if err != nil {
		return dto.SearchSnapshot{}, fmt.Errorf("failed to get search: %w", err)
	}

	return snapshot, nil
}

// GetHotel returns the hotel found for one event of a search.
func (s *SearchService) GetHotel(ctx context.Context, req dto.HotelRequest) (dto.HotelOption, error) {
	if session, ok := s.session(req.SearchID); ok {
		hotel, found := session.HotelFor(req.EventName)
		if !found {
			return dto.HotelOption{}, ErrHotelNotFound
		}

		return hotel, nil
	}

	snapshot, err := s.GetSearch(ctx, req.SearchID)
	if err != nil {
		return dto.HotelOption{}, err
	}

	result, found := lo.Find(snapshot.Events, func(e dto.EventResult) bool {
		return e.Event.Name == req.EventName
	})
	if !found || result.Hotel == nil {
		return dto.HotelOption{}, ErrHotelNotFound
	}

	return *result.Hotel, nil
}

// CancelSearch stops a running search and returns its last state.
func (s *SearchService) CancelSearch(ctx context.Context, id string) (dto.SearchSnapshot, error) {
	session, ok := s.session(id)
	if !ok {
		if _, err := s.GetSearch(ctx, id); err != nil {
			return dto.SearchSnapshot{}, err
		}

		return dto.SearchSnapshot{}, ErrSearchNotRunning
	}

	session.Cancel()
	slog.InfoContext(ctx, "search cancelled", slog.String("session_id", id))

	return session.Snapshot(), nil
}

// Shutdown cancels every live search and waits for them to settle.
func (s *SearchService) Shutdown(ctx context.Context) error {
	s.mu.RLock()
	sessions := lo.Values(s.sessions)
	s.mu.RUnlock()

	for _, session := range sessions {
		session.Cancel()
	}

	for _, session := range sessions {
		select {
		case <-session.Done():
		case <-ctx.Done():
			return fmt.Errorf("failed to stop searches: %w", ctx.Err())
		}
	}

	return nil
}

func (s *SearchService) session(id string) (*trip.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]

	return session, ok
}

// release drops a session once it has settled, leaving its final snapshot in the cache.
func (s *SearchService) release(ctx context.Context, session *trip.Session) {
	<-session.Done()

	s.persist(ctx, session.Snapshot())

	s.mu.Lock()
	delete(s.sessions, session.ID())
	s.mu.Unlock()

	metrics.ActiveSearches.Dec()
	metrics.SearchSessions.WithLabelValues(string(session.State())).Inc()
}

func (s *SearchService) persist(ctx context.Context, snapshot dto.SearchSnapshot) {
	// the base context may already be cancelled during shutdown
	ctx = context.WithoutCancel(ctx)

	if err := s.Cache.SetSnapshot(ctx, snapshot, s.SnapshotExpiration); err != nil {
		slog.WarnContext(ctx, "failed to save search snapshot", slog.String("error", err.Error()))
	}
}

// sessionListener writes a snapshot for every session notification.
type sessionListener struct {
	service *SearchService
	ctx     context.Context
}

func (l *sessionListener) ProgressChanged(s *trip.Session, progress dto.Progress) {
	slog.DebugContext(l.ctx, "search progress",
		slog.Int("remaining", progress.Remaining), slog.String("phase", progress.Phase))

	l.service.persist(l.ctx, s.Snapshot())
}

func (l *sessionListener) FlightReady(s *trip.Session, eventName string, flight dto.FlightOption) {
	slog.InfoContext(l.ctx, "flight found",
		slog.String("event", eventName), slog.String("price", flight.Price.Formatted))

	l.service.persist(l.ctx, s.Snapshot())
}

func (l *sessionListener) Completed(s *trip.Session) {
	slog.InfoContext(l.ctx, "search completed")

	l.service.persist(l.ctx, s.Snapshot())
}

func (l *sessionListener) Failed(s *trip.Session, err error) {
	slog.WarnContext(l.ctx, "search ended early", slog.String("error", err.Error()))

	l.service.persist(l.ctx, s.Snapshot())
}
