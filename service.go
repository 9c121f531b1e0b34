package streamecho

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jhump/streamecho/streamingpb"
)

// EchoService provides an implementation of streamingpb.StreamingServer.
//
// Every call to Echo is independent: it gets its own outbound buffer and
// its own goroutine that consumes requests, so concurrent calls cannot
// interfere with one another.
//
// See NewEchoService.
type EchoService struct {
	streamingpb.UnimplementedStreamingServer

	bufferSize int
	respond    Responder
	logger     log.Logger

	stopping atomic.Bool
	nextID   atomic.Uint64
}

var _ streamingpb.StreamingServer = (*EchoService)(nil)

// NewEchoService creates a new EchoService. Options that only apply to a
// Server, like WithServerOptions, are ignored.
func NewEchoService(opts ...Option) *EchoService {
	return newEchoService(newEchoOpts(opts))
}

func newEchoService(opts *echoOpts) *EchoService {
	return &EchoService{
		bufferSize: opts.bufferSize,
		respond:    opts.responder,
		logger:     opts.logger,
	}
}

// InitiateShutdown makes the service reject new calls with an "Unavailable"
// error code. Calls already in progress are not affected. This complements
// the GracefulStop method of a *grpc.Server, letting existing calls drain.
func (s *EchoService) InitiateShutdown() {
	s.stopping.Store(true)
}

// Echo implements streamingpb.StreamingServer.
func (s *EchoService) Echo(stream streamingpb.Streaming_EchoServer) error {
	return s.serveEcho(stream)
}

type echoStream interface {
	Context() context.Context
	Send(*streamingpb.EchoResponse) error
	Recv() (*streamingpb.EchoRequest, error)
}

// serveEcho sends everything the call's consumption goroutine produces. It
// returns nil once the outbound buffer is closed, or the first error item,
// which becomes the status of the call.
func (s *EchoService) serveEcho(stream echoStream) error {
	if s.stopping.Load() {
		return status.Error(codes.Unavailable, "server is shutting down")
	}

	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()
	call := s.echo(ctx, stream.Recv)
	// nobody is left to dequeue once we return; make the producer fail fast
	defer call.out.cancel()

	for {
		item, ok := call.out.dequeue(ctx)
		if !ok {
			if err := ctx.Err(); err != nil {
				return status.FromContextError(err).Err()
			}
			return nil
		}
		if item.err != nil {
			return item.err
		}
		if err := stream.Send(item.resp); err != nil {
			return err
		}
		call.sent.Add(1)
	}
}

type echoResult struct {
	resp *streamingpb.EchoResponse
	err  error
}

type echoState int32

const (
	echoStarted echoState = iota
	echoStreaming
	echoCompleted
	echoAborted
	echoFailed
)

func (s echoState) String() string {
	switch s {
	case echoStarted:
		return "started"
	case echoStreaming:
		return "streaming"
	case echoCompleted:
		return "completed"
	case echoAborted:
		return "aborted"
	case echoFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// echoCall is the server-side state of a single Echo call.
type echoCall struct {
	id    uint64
	start time.Time
	out   *outboundBuffer[echoResult]
	// closed when the consumption goroutine exits
	done chan struct{}

	state          atomic.Int32
	received, sent atomic.Int64
}

func (c *echoCall) getState() echoState {
	return echoState(c.state.Load())
}

// echo starts consuming the requests returned by recv and returns
// immediately. The returned call's outbound buffer yields one item per
// request, in order, and is closed when the consumption goroutine exits.
func (s *EchoService) echo(ctx context.Context, recv func() (*streamingpb.EchoRequest, error)) *echoCall {
	call := &echoCall{
		id:    s.nextID.Add(1),
		start: time.Now(),
		out:   newOutboundBuffer[echoResult](s.bufferSize),
		done:  make(chan struct{}),
	}
	go s.consume(ctx, call, recv)
	return call
}

func (s *EchoService) consume(ctx context.Context, call *echoCall, recv func() (*streamingpb.EchoRequest, error)) {
	defer close(call.done)
	// end of stream for the outbound half, after anything already buffered
	defer call.out.close()

	call.state.Store(int32(echoStreaming))
	state, err := s.consumeRequests(ctx, call, recv)
	call.state.Store(int32(state))

	// buffered counts responses the handler has not sent yet
	logger := log.With(s.logger, "call", call.id, "state", state,
		"received", call.received.Load(), "buffered", call.out.len(),
		"took", time.Since(call.start))
	switch {
	case state == echoCompleted:
		level.Debug(logger).Log("event", "inbound finished")
	case state == echoAborted && ClassifyDisconnect(err) == ReasonBrokenPipe:
		level.Info(logger).Log("event", "client disconnected: broken pipe")
	case state == echoAborted:
		level.Debug(logger).Log("event", "outbound abandoned", "err", err)
	default:
		level.Warn(logger).Log("event", "inbound failed", "err", err)
	}
}

func (s *EchoService) consumeRequests(ctx context.Context, call *echoCall, recv func() (*streamingpb.EchoRequest, error)) (echoState, error) {
	for {
		req, err := recv()
		if err != nil {
			switch ClassifyDisconnect(err) {
			case ReasonEndOfStream:
				return echoCompleted, nil
			case ReasonBrokenPipe:
				// the client went away abruptly; nobody is waiting for an error
				return echoAborted, err
			}
			return s.forward(ctx, call, err)
		}
		call.received.Add(1)

		resp, err := s.safeRespond(ctx, req)
		if err != nil {
			return s.forward(ctx, call, err)
		}
		if err := call.out.push(ctx, echoResult{resp: resp}); err != nil {
			return echoAborted, err
		}
	}
}

// forward pushes err as the final item of the call.
func (s *EchoService) forward(ctx context.Context, call *echoCall, err error) (echoState, error) {
	if pushErr := call.out.push(ctx, echoResult{err: err}); pushErr != nil {
		return echoAborted, pushErr
	}
	return echoFailed, err
}

// safeRespond calls the responder, turning a panic into an "Internal" error
// for this call only. It runs on the consumption goroutine, where no server
// interceptor can recover it.
func (s *EchoService) safeRespond(ctx context.Context, req *streamingpb.EchoRequest) (resp *streamingpb.EchoResponse, err error) {
	defer func() {
		if p := recover(); p != nil {
			level.Error(s.logger).Log("event", "responder panic", "panic", p)
			resp, err = nil, status.Errorf(codes.Internal, "panic in responder: %v", p)
		}
	}()
	return s.respond(ctx, req)
}
