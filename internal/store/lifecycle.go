package store

import (
	"time"

	"github.com/critfall/dmscreen/internal/errors"
)

// Status describes the request lifecycle of one entity collection.
type Status string

// Lifecycle states. Every asynchronous operation moves its owning slice to
// StatusLoading before the network call, then to StatusSucceeded or
// StatusFailed when the response arrives. A failed status never rolls back
// previously committed data; only the attempted mutation is not applied.
const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// lifecycle is the per-slice status machine plus last-error capture.
//
// Concurrent operations against the same slice are not serialized or
// coalesced: whichever response arrives last overwrites status, error and
// data, even if its request was dispatched first. Last-response-wins is the
// intended consistency model, not an accident to be fixed here.
type lifecycle struct {
	status    Status
	err       *errors.Error
	settledAt time.Time
}

func newLifecycle() lifecycle {
	return lifecycle{status: StatusIdle}
}

func (l *lifecycle) begin() {
	l.status = StatusLoading
}

func (l *lifecycle) succeed(now time.Time) {
	l.status = StatusSucceeded
	l.err = nil
	l.settledAt = now
}

func (l *lifecycle) fail(err error, now time.Time) {
	l.status = StatusFailed
	l.err = asError(err)
	l.settledAt = now
}

func (l *lifecycle) clearError() {
	l.err = nil
}

// asError normalizes any error into the structured form the slices capture,
// so the error field is always inspectable after an operation settles.
func asError(err error) *errors.Error {
	if err == nil {
		return nil
	}
	var structured *errors.Error
	if errors.As(err, &structured) {
		return structured
	}
	return errors.Internal(err.Error())
}
