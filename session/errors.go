package session

import "errors"

var (
	// ErrUnavailable is returned when a port reports fewer bytes available
	// than the record being transferred requires, before any Post/Request
	// call is attempted.
	ErrUnavailable error = errors.New("session: port does not have enough bytes available")

	// ErrDeadlineExceeded describes a caller's timeout being used up
	// before a transport call. Egress.Post and Ingress.Request do not
	// return it: when encoding uses up the timeout, Post is still issued
	// with a zero timeout.
	ErrDeadlineExceeded error = errors.New("session: deadline exceeded before transport call")

	// ErrCodecFailed is returned when a Record's own Encode/Decode call
	// fails against a scratch buffer sized to its own SizeBytes — this
	// should only happen if a Recorder's Record() does not consistently
	// report the same field layout across calls.
	ErrCodecFailed error = errors.New("session: record encode/decode failed against a correctly sized buffer")
)

// TransportError wraps an error returned by an Outbound or Inbound port
// with the direction that failed, so logs and metrics can distinguish a
// Post failure from a Request failure without string-matching the
// underlying error.
type TransportError struct {
	Op  string // "post" or "request"
	Err error
}

func (e *TransportError) Error() string { return "session: " + e.Op + ": " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }
