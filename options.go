package streamecho

import (
	"github.com/go-kit/kit/log"
	"google.golang.org/grpc"
)

// DefaultBufferSize is the capacity of the per-call outbound buffer when no
// WithBufferSize option is given.
const DefaultBufferSize = 4

// Option is an option for configuring the behavior of an EchoService or a
// Server.
type Option interface {
	apply(*echoOpts)
}

// WithBufferSize returns an option that sets the capacity of the bounded
// buffer that sits between consuming a call's requests and sending its
// responses. Values less than one are ignored.
//
// The buffer is what throttles reading from a client that does not read
// its responses, so large values weaken flow control.
func WithBufferSize(size int) Option {
	return optFunc(func(opts *echoOpts) {
		if size > 0 {
			opts.bufferSize = size
		}
	})
}

// WithResponder returns an option that replaces the function used to compute
// the response for each request. By default, FixedResponder is used.
func WithResponder(r Responder) Option {
	return optFunc(func(opts *echoOpts) {
		if r != nil {
			opts.responder = r
		}
	})
}

// WithLogger returns an option that configures where the service logs call
// lifecycle events. By default, nothing is logged.
func WithLogger(logger log.Logger) Option {
	return optFunc(func(opts *echoOpts) {
		if logger != nil {
			opts.logger = logger
		}
	})
}

// WithServerOptions returns an option that passes the given options to the
// underlying *grpc.Server created by NewServer. It has no effect on an
// EchoService created with NewEchoService.
func WithServerOptions(serverOpts ...grpc.ServerOption) Option {
	return optFunc(func(opts *echoOpts) {
		opts.serverOpts = append(opts.serverOpts, serverOpts...)
	})
}

type echoOpts struct {
	bufferSize int
	responder  Responder
	logger     log.Logger
	serverOpts []grpc.ServerOption
}

func newEchoOpts(opts []Option) *echoOpts {
	o := &echoOpts{
		bufferSize: DefaultBufferSize,
		responder:  FixedResponder,
		logger:     log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt.apply(o)
	}
	return o
}

type optFunc func(*echoOpts)

func (f optFunc) apply(opts *echoOpts) {
	f(opts)
}
