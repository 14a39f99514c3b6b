package store

import "smartrx-client/internal/pkg/exceptions"

// Result reports the outcome of a store mutator. Err is nil on success.
type Result struct {
	Success bool
	Err     error
}

// Message is the user facing text of a failed result.
func (r Result) Message() string {
	return exceptions.Message(r.Err)
}

func succeeded() Result {
	return Result{Success: true}
}

func failed(err error) Result {
	return Result{Success: false, Err: err}
}
