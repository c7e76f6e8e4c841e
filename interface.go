package future

type State string

const (
	StatePending   = State("pending")
	StateFulfilled = State("fulfilled")
	StateRejected  = State("rejected")
)

// ComputeHandler is the computation backing a promise created with New.
type ComputeHandler func() (value interface{}, err error)

// FulfillHandler transforms a fulfilled value into the next promise's outcome.
type FulfillHandler func(value interface{}) (result interface{}, err error)

// CombineHandler maps a fulfilled value to another promise whose outcome is adopted.
type CombineHandler func(value interface{}) *Promise

type Promiser interface {
	Await() (value interface{}, err error)
	State() State
	Settled() bool
	Then(handler FulfillHandler) *Promise
	Combine(handler CombineHandler) *Promise
}
