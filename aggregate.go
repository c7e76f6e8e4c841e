package future

import "errors"

// ErrSomePromisesFailed is the fixed rejection payload of All. Individual
// error identity and position are deliberately discarded.
var ErrSomePromisesFailed = errors.New("Some promises failed.")

// All spawns a worker that awaits every promise in order and fulfills with
// the values in input order. The inputs' computations already started at
// their own construction, so completion order across them is unconstrained;
// only the result order is guaranteed. If any input is rejected, All still
// awaits the remaining inputs and then rejects with ErrSomePromisesFailed.
func All(promises ...*Promise) *Promise {
	return spawn(func() (interface{}, error) {
		values := make([]interface{}, 0, len(promises))
		failed := false

		for _, promise := range promises {
			value, err := promise.Await()
			if nil != err {
				failed = true

				continue
			}

			values = append(values, value)
		}

		if failed {
			return nil, ErrSomePromisesFailed
		}

		return values, nil
	})
}

// Some spawns a worker that awaits every promise in order and always
// fulfills, carrying the values of the successful inputs in their original
// relative order. Rejections are dropped; if every input is rejected the
// result is an empty list. Some never rejects.
func Some(promises ...*Promise) *Promise {
	return spawn(func() (interface{}, error) {
		values := make([]interface{}, 0, len(promises))

		for _, promise := range promises {
			if value, err := promise.Await(); nil == err {
				values = append(values, value)
			}
		}

		return values, nil
	})
}
