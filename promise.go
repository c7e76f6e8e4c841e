package future

import (
	"fmt"

	"github.com/donatorsky/go-future/logger"
)

// Promise is a handle for a value that is either already known or still
// being computed by a worker goroutine. The zero value is not usable; use
// Resolve, Reject or New.
type Promise struct {
	// done is owned by the worker goroutine backing a pending promise: the
	// worker is the sole writer of state, value and err, and closes done
	// exactly once after writing them. nil for promises settled at
	// construction.
	done chan struct{}

	state State
	value interface{}
	err   error
}

// Resolve returns an already-fulfilled promise carrying value.
func Resolve(value interface{}) *Promise {
	return &Promise{
		state: StateFulfilled,
		value: value,
	}
}

// Reject returns an already-rejected promise carrying reason.
func Reject(reason error) *Promise {
	return &Promise{
		state: StateRejected,
		err:   reason,
	}
}

// New spawns a worker that invokes compute immediately, whether or not the
// returned promise is ever awaited. A non-nil error return or a panic in
// compute rejects the promise; a panic value that is not an error is
// wrapped so its message is preserved.
func New(compute ComputeHandler) *Promise {
	return spawn(compute)
}

func spawn(run func() (interface{}, error)) *Promise {
	p := &Promise{
		state: StatePending,
		done:  make(chan struct{}),
	}

	go func() {
		defer close(p.done)
		defer func() {
			if r := recover(); nil != r {
				p.settle(nil, recoveredError(r))
			}
		}()

		p.settle(run())
	}()

	return p
}

func (p *Promise) settle(value interface{}, err error) {
	if nil != err {
		p.state = StateRejected
		p.err = err
	} else {
		p.state = StateFulfilled
		p.value = value
	}

	logger.Debugf("worker settled => %s", p.state)
}

func recoveredError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}

	return fmt.Errorf("%v", r)
}

// Await blocks until the promise has an outcome and returns it. The outcome
// is cached: Await may be called any number of times, from any goroutine,
// and always returns the same value or error. If the worker's computation
// never terminates, Await blocks forever.
func (p *Promise) Await() (interface{}, error) {
	if nil != p.done {
		<-p.done
	}

	if StateRejected == p.state {
		return nil, p.err
	}

	return p.value, nil
}

// State reports the current state without blocking.
func (p *Promise) State() State {
	if !p.Settled() {
		return StatePending
	}

	return p.state
}

// Settled reports whether an outcome is available, without blocking.
func (p *Promise) Settled() bool {
	if nil == p.done {
		return true
	}

	select {
	case <-p.done:
		return true
	default:
		return false
	}
}
