// Package future provides an eager future/promise abstraction: a handle for
// a value that may not yet exist, computed by a dedicated worker goroutine
// that starts at construction time, observed through a blocking Await call,
// and composed through combinators (Then, Combine, All, Some) that are
// themselves new workers layered over existing promises.
//
// A promise is in exactly one of three states at any time:
// StatePending: the worker backing this promise has not delivered its
// outcome yet.
// StateFulfilled: the computation finished with a value and a nil error.
// StateRejected: the computation finished with a non-nil error, or panicked.
//
// Once settled, a promise never changes state and Await returns the same
// outcome any number of times, from any goroutine. A pending promise's
// worker runs its computation at most once, whether or not anyone ever
// awaits it. There is no cancellation and no timeout: awaiting a promise
// whose computation never terminates blocks the calling goroutine forever.
package future
