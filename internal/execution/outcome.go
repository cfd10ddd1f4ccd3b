package execution

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned when a unit does not settle within the case timeout
var ErrTimeout = errors.New("test timed out")

// Outcome is the settled result of a unit of work. Err is nil on success.
type Outcome struct {
	Err error
}

// OK reports whether the unit succeeded
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Message returns the failure text recorded for a failed outcome
func (o Outcome) Message() string {
	if o.Err == nil {
		return ""
	}
	if msg := o.Err.Error(); msg != "" {
		return msg
	}
	return "test failed with no failure message"
}

// settle runs unit and converts any return or panic into an Outcome.
// Nothing the unit does can escape this call.
func settle(ctx context.Context, unit Unit) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	if unit == nil {
		return Outcome{Err: errors.New("test case has no unit of work")}
	}
	return Outcome{Err: unit(ctx)}
}

// settleWithin is settle raced against a deadline. A unit that ignores its
// context keeps running in the background after the deadline fires.
func settleWithin(ctx context.Context, unit Unit, timeout time.Duration) Outcome {
	if timeout <= 0 {
		return settle(ctx, unit)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan Outcome, 1)
	go func() {
		done <- settle(ctx, unit)
	}()

	select {
	case out := <-done:
		return out
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Outcome{Err: fmt.Errorf("%w after %s", ErrTimeout, timeout)}
		}
		return Outcome{Err: ctx.Err()}
	}
}
