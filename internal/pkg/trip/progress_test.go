package trip

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
)

func TestComputeProgress(t *testing.T) {
	compute := func(total, remaining int, label string, want dto.Progress) func(t *testing.T) {
		return func(t *testing.T) {
			got := ComputeProgress(total, remaining, label)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("ComputeProgress() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("nothing_done", compute(4, 4, PhaseLocating,
		dto.Progress{Total: 4, Remaining: 4, Percent: 0, Phase: PhaseLocating}))
	t.Run("half_done", compute(4, 2, PhaseYourFlights,
		dto.Progress{Total: 4, Remaining: 2, Percent: 50, Phase: PhaseYourFlights}))
	t.Run("all_done", compute(4, 0, PhaseHotel,
		dto.Progress{Total: 4, Remaining: 0, Percent: 100, Phase: PhaseComplete}))
	t.Run("clamped_below", compute(4, 6, PhaseFlights,
		dto.Progress{Total: 4, Remaining: 6, Percent: 0, Phase: PhaseFlights}))
	t.Run("clamped_above", compute(4, -1, PhaseFlights,
		dto.Progress{Total: 4, Remaining: -1, Percent: 100, Phase: PhaseComplete}))
	t.Run("empty_total", compute(0, 0, PhaseLocating,
		dto.Progress{Total: 0, Remaining: 0, Percent: 0, Phase: PhaseLocating}))
}
