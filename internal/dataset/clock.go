package dataset

import "github.com/jonboulle/clockwork"

// clock stamps and times dataset loads; tests freeze it via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the time source used by Load. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
