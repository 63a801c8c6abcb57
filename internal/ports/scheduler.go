package ports

import "time"

// Timer is a pending deferred call.
type Timer interface {
	// Stop cancels the call. It reports false if the call already ran or was
	// already stopped.
	Stop() bool
}

// Scheduler runs f once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type SystemScheduler struct{}

func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
