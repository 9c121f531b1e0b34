package streamecho

import (
	"context"
	"io"

	"golang.org/x/sys/unix"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DisconnectReason classifies why the inbound half of a call stopped
// producing messages.
type DisconnectReason int

const (
	// ReasonUnknown means the error is not a recognized disconnect.
	ReasonUnknown DisconnectReason = iota
	// ReasonEndOfStream means the peer closed its half normally.
	ReasonEndOfStream
	// ReasonBrokenPipe means the peer went away while data was still
	// being written to it.
	ReasonBrokenPipe
	// ReasonConnectionReset means the connection was reset by the peer.
	ReasonConnectionReset
	// ReasonCanceled means the call was canceled.
	ReasonCanceled
)

func (r DisconnectReason) String() string {
	switch r {
	case ReasonEndOfStream:
		return "end of stream"
	case ReasonBrokenPipe:
		return "broken pipe"
	case ReasonConnectionReset:
		return "connection reset"
	case ReasonCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// DisconnectReasoner is implemented by errors that know their own
// DisconnectReason. A transport can attach one to the errors it returns so
// that classification does not depend on the shape of wrapped causes.
type DisconnectReasoner interface {
	DisconnectReason() DisconnectReason
}

// WithDisconnectReason wraps err so that ClassifyDisconnect reports reason
// for it. The given error stays reachable through Unwrap.
func WithDisconnectReason(err error, reason DisconnectReason) error {
	if err == nil {
		return nil
	}
	return &disconnectError{err: err, reason: reason}
}

type disconnectError struct {
	err    error
	reason DisconnectReason
}

func (e *disconnectError) Error() string {
	return e.err.Error()
}

func (e *disconnectError) Unwrap() error {
	return e.err
}

func (e *disconnectError) DisconnectReason() DisconnectReason {
	return e.reason
}

// knownDisconnects is checked in order against every error in a cause chain.
var knownDisconnects = []struct {
	target error
	reason DisconnectReason
}{
	{io.EOF, ReasonEndOfStream},
	{unix.EPIPE, ReasonBrokenPipe},
	{unix.ECONNRESET, ReasonConnectionReset},
	{context.Canceled, ReasonCanceled},
}

// ClassifyDisconnect walks the cause chain of err, outermost first, and
// returns the reason of the first error that is recognized. At each layer an
// explicit DisconnectReasoner wins over the fixed list of known errors.
//
// Errors are unwrapped via Unwrap() error, Unwrap() []error and the
// Cause() error method used by github.com/pkg/errors.
func ClassifyDisconnect(err error) DisconnectReason {
	reason := ReasonUnknown
	walkCauses(err, func(e error) bool {
		reason = classifyOne(e)
		return reason == ReasonUnknown
	})
	return reason
}

func classifyOne(err error) DisconnectReason {
	if r, ok := err.(DisconnectReasoner); ok {
		if reason := r.DisconnectReason(); reason != ReasonUnknown {
			return reason
		}
	}
	for _, known := range knownDisconnects {
		if err == known.target {
			return known.reason
		}
		if is, ok := err.(interface{ Is(error) bool }); ok && is.Is(known.target) {
			return known.reason
		}
	}
	if st, ok := err.(interface{ GRPCStatus() *status.Status }); ok && st.GRPCStatus().Code() == codes.Canceled {
		return ReasonCanceled
	}
	return ReasonUnknown
}

// walkCauses calls fn for err and each of its causes until fn returns false.
// It reports whether the walk ran to completion.
func walkCauses(err error, fn func(error) bool) bool {
	for err != nil {
		if !fn(err) {
			return false
		}
		switch e := err.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				if !walkCauses(inner, fn) {
					return false
				}
			}
			return true
		case interface{ Unwrap() error }:
			err = e.Unwrap()
		case interface{ Cause() error }:
			err = e.Cause()
		default:
			return true
		}
	}
	return true
}
