// Package barrier provides a counting barrier: it fires a callback once,
// when the last of N expected arrivals has happened.
package barrier

import (
	"errors"
	"sync"
)

var ErrOverrun = errors.New("barrier: more arrivals than expected")

type Barrier struct {
	mu        sync.Mutex
	total     int
	remaining int
	fired     bool
	onZero    func()
	done      chan struct{}
}

// New returns a barrier expecting total arrivals. onZero may be nil.
// A barrier with no expected arrivals never fires.
func New(total int, onZero func()) *Barrier {
	if total < 0 {
		total = 0
	}

	return &Barrier{
		total:     total,
		remaining: total,
		onZero:    onZero,
		done:      make(chan struct{}),
	}
}

// Arrive records one completion and returns how many are still outstanding.
// The arrival that brings the count to zero runs onZero before returning.
// Arrivals past zero leave the count untouched and return ErrOverrun.
func (b *Barrier) Arrive() (int, error) {
	return b.ArriveFunc(nil)
}

// ArriveFunc is Arrive with fn run under the barrier lock with the new remaining
// count, so observers see every count in order. fn runs before onZero.
func (b *Barrier) ArriveFunc(fn func(remaining int)) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.remaining == 0 {
		return 0, ErrOverrun
	}

	b.remaining--
	if fn != nil {
		fn(b.remaining)
	}

	if b.remaining == 0 {
		b.fire()
	}

	return b.remaining, nil
}

func (b *Barrier) fire() {
	if b.fired {
		return
	}

	b.fired = true
	if b.onZero != nil {
		b.onZero()
	}
	close(b.done)
}

func (b *Barrier) Remaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.remaining
}

func (b *Barrier) Total() int {
	return b.total
}

// Done is closed once the barrier has fired.
func (b *Barrier) Done() <-chan struct{} {
	return b.done
}
