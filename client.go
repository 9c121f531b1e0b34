package streamecho

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/jhump/streamecho/streamingpb"
)

// Unbounded can be given as a request count to send requests until the call
// fails or its context is canceled.
const Unbounded = -1

// RequestAt returns the i-th request (zero-based) of the sequence sent by
// a Call: "msg 01", "msg 02", and so on.
func RequestAt(i int) *streamingpb.EchoRequest {
	return &streamingpb.EchoRequest{Message: fmt.Sprintf("msg %02d", i+1)}
}

// ResponseHandler is called with each response as it arrives. Returning an
// error aborts the call.
type ResponseHandler func(*streamingpb.EchoResponse) error

// CallState describes which halves of a Call are still open.
type CallState int32

const (
	// CallOpen means both halves of the call are still open.
	CallOpen CallState = iota
	// CallHalfClosedByClient means all requests were sent and the outbound
	// half was closed, while responses may still arrive.
	CallHalfClosedByClient
	// CallHalfClosedByServer means the server ended its half before the
	// client finished sending.
	CallHalfClosedByServer
	// CallClosed means both halves were closed normally.
	CallClosed
	// CallFailed means the call ended with an error, or was closed before
	// it completed.
	CallFailed
)

func (s CallState) String() string {
	switch s {
	case CallOpen:
		return "open"
	case CallHalfClosedByClient:
		return "half-closed by client"
	case CallHalfClosedByServer:
		return "half-closed by server"
	case CallClosed:
		return "closed"
	case CallFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Call is the client side of one Echo call.
type Call struct {
	stream streamingpb.Streaming_EchoClient
	grp    *errgroup.Group
	cancel context.CancelFunc

	sent, received atomic.Int64

	mu    sync.Mutex
	state CallState
	ran   bool
}

// StartCall opens an Echo call. The call is canceled if ctx is canceled,
// when either direction of Run fails, or when Run returns. A call that is
// never run must be released with Close.
//
// StartCall does nothing but open the stream, so it is safe to retry.
func StartCall(ctx context.Context, client streamingpb.StreamingClient, opts ...grpc.CallOption) (*Call, error) {
	ctx, cancel := context.WithCancel(ctx)
	grp, ctx := errgroup.WithContext(ctx)
	stream, err := client.Echo(ctx, opts...)
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "failed to start echo call")
	}
	return &Call{stream: stream, grp: grp, cancel: cancel}, nil
}

// RunBidiEcho starts a call and then sends count requests on it (or never
// stops sending, if count is Unbounded), while passing every response to
// handle. It returns when the server ends the call.
func RunBidiEcho(ctx context.Context, client streamingpb.StreamingClient, count int, handle ResponseHandler) error {
	call, err := StartCall(ctx, client)
	if err != nil {
		return err
	}
	return call.Run(count, handle)
}

// Run sends count requests and closes the outbound half of the call, while
// concurrently receiving responses until the server closes its half. The
// outbound half is closed even when count is zero. A negative count means
// Unbounded.
//
// Any error received from the server is returned: Run makes no attempt to
// recover from it. Run may only be called once.
func (c *Call) Run(count int, handle ResponseHandler) error {
	c.mu.Lock()
	if c.ran {
		c.mu.Unlock()
		return errors.New("call already run or closed")
	}
	c.ran = true
	c.mu.Unlock()
	defer c.cancel()

	c.grp.Go(func() error {
		return c.sendAll(count)
	})
	c.grp.Go(func() error {
		return c.receiveAll(handle)
	})
	err := c.grp.Wait()
	if err != nil {
		c.setState(CallFailed)
	}
	return err
}

// Close cancels the call and releases its stream. If Run has not been
// called, it will fail. Closing a call that already finished has no effect.
func (c *Call) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ran {
		c.ran = true
		c.state = CallFailed
	}
	c.cancel()
}

// Sent returns the number of requests sent so far.
func (c *Call) Sent() int64 {
	return c.sent.Load()
}

// Received returns the number of responses received so far.
func (c *Call) Received() int64 {
	return c.received.Load()
}

// State returns the current state of the call.
func (c *Call) State() CallState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Call) sendAll(count int) error {
	for i := 0; count < 0 || i < count; i++ {
		if err := c.stream.Send(RequestAt(i)); err != nil {
			if errors.Is(err, io.EOF) {
				// The server already ended the call. The
				// actual status is reported to receiveAll.
				return nil
			}
			return errors.Wrapf(err, "failed to send request %d", i+1)
		}
		c.sent.Add(1)
	}
	if err := c.stream.CloseSend(); err != nil {
		return errors.Wrap(err, "failed to close send direction")
	}
	c.halfClose(CallHalfClosedByClient)
	return nil
}

func (c *Call) receiveAll(handle ResponseHandler) error {
	for {
		resp, err := c.stream.Recv()
		if errors.Is(err, io.EOF) {
			c.halfClose(CallHalfClosedByServer)
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "failed to receive response %d", c.received.Load()+1)
		}
		c.received.Add(1)
		if handle != nil {
			if err := handle(resp); err != nil {
				return err
			}
		}
	}
}

func (c *Call) halfClose(side CallState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.state {
	case CallOpen:
		c.state = side
	case CallHalfClosedByClient, CallHalfClosedByServer:
		if c.state != side {
			c.state = CallClosed
		}
	}
}

func (c *Call) setState(state CallState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
}
