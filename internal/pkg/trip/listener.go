package trip

import "github.com/ijalalfrz/event-trip-search-service/internal/app/dto"

// Listener receives session notifications in the order they happened, one
// at a time, from a goroutine owned by the session. Implementations may
// call back into the session.
type Listener interface {
	ProgressChanged(s *Session, progress dto.Progress)
	FlightReady(s *Session, eventName string, flight dto.FlightOption)
	Completed(s *Session)
	Failed(s *Session, err error)
}

type nopListener struct{}

func (nopListener) ProgressChanged(*Session, dto.Progress)         {}
func (nopListener) FlightReady(*Session, string, dto.FlightOption) {}
func (nopListener) Completed(*Session)                             {}
func (nopListener) Failed(*Session, error)                         {}
