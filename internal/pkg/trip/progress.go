package trip

import (
	"math"

	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
)

// Phase labels shown next to the progress percentage.
const (
	PhaseLocating       = "Getting your location..."
	PhaseNearbyAirports = "Getting your nearby airports..."
	PhaseYourFlights    = "Getting your flights..."
	PhaseFlights        = "Getting flights..."
	PhaseHotel          = "Getting your hotel..."
	PhaseInternational  = "Skipping flights for events outside the USA..."
	PhaseNoEventAirport = "No airport found near the event..."
	PhaseComplete       = "Complete!"
)

// ComputeProgress converts the outstanding request count into a percentage.
// The label is replaced by PhaseComplete once the percentage rounds up to 100.
func ComputeProgress(total, remaining int, label string) dto.Progress {
	percent := 0.0
	if total > 0 {
		percent = (1 - float64(remaining)/float64(total)) * 100
	}

	percent = math.Max(0, math.Min(100, percent))

	phase := label
	if math.Ceil(percent) >= 100 {
		phase = PhaseComplete
	}

	return dto.Progress{
		Total:     total,
		Remaining: remaining,
		Percent:   percent,
		Phase:     phase,
	}
}
