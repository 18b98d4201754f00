package overlay

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Clock schedules callbacks onto the UI event loop. It exists so that the
// fade machinery is driven by plain callbacks instead of toolkit timers,
// which keeps the animation logic testable with a substitute clock.
type Clock interface {
	// Every invokes fn on the UI thread at the given fixed interval until
	// the returned Stopper is stopped.
	Every(interval time.Duration, fn func()) Stopper

	// After invokes fn once on the UI thread after the given delay unless
	// the returned Stopper is stopped first.
	After(delay time.Duration, fn func()) Stopper
}

// Stopper cancels a scheduled callback. Stopping more than once is safe.
type Stopper interface {
	Stop()
}

// stopper wraps a cancel function so repeated stops are harmless
type stopper struct {
	once sync.Once
	fn   func()
}

// Stop cancels the scheduled callback
func (s *stopper) Stop() {
	s.once.Do(s.fn)
}

// driverClock schedules callbacks through background timers and marshals
// every invocation onto the Fyne event loop with fyne.Do.
type driverClock struct{}

// NewDriverClock creates the production clock backed by the Fyne driver
func NewDriverClock() Clock {
	return driverClock{}
}

// Every starts a repeating callback at the given interval
func (driverClock) Every(interval time.Duration, fn func()) Stopper {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fyne.Do(fn)
			}
		}
	}()

	return &stopper{fn: func() {
		ticker.Stop()
		close(done)
	}}
}

// After schedules a one-shot callback after the given delay
func (driverClock) After(delay time.Duration, fn func()) Stopper {
	timer := time.AfterFunc(delay, func() {
		fyne.Do(fn)
	})
	return &stopper{fn: func() {
		timer.Stop()
	}}
}
