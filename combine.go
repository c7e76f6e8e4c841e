package future

// Then spawns a worker that awaits p and, on success, applies handler to
// the value; a non-nil error return or a panic in handler rejects the new
// promise with the raw error. On failure the original rejection payload is
// passed through unchanged and handler is never invoked.
func (p *Promise) Then(handler FulfillHandler) *Promise {
	return spawn(func() (interface{}, error) {
		value, err := p.Await()
		if nil != err {
			return nil, err
		}

		return handler(value)
	})
}

// Combine spawns a worker that awaits p and, on success, calls handler to
// obtain an inner promise, awaits it, and adopts its outcome. On failure
// the original rejection payload is passed through unchanged and handler
// is never invoked.
func (p *Promise) Combine(handler CombineHandler) *Promise {
	return spawn(func() (interface{}, error) {
		value, err := p.Await()
		if nil != err {
			return nil, err
		}

		return handler(value).Await()
	})
}
