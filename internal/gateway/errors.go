package gateway

import "errors"

// ErrSessionMissing means there is no valid admin session. Terminal for the
// surface that hit it: callers redirect to login and stop scheduling.
var ErrSessionMissing = errors.New("admin session missing")

// RemoteError wraps any failure surfaced by the backend. It always reaches
// the caller of the enclosing mutation or sync; nothing is swallowed here.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return "remote " + e.Op + ": " + e.Err.Error()
}

func (e *RemoteError) Unwrap() error { return e.Err }

func remoteErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &RemoteError{Op: op, Err: err}
}
