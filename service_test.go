package streamecho

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"github.com/jhump/streamecho/streamingpb"
)

// fakeStream stands in for the server side of an Echo call. Requests and
// errors written to in are returned from Recv. Closing in makes Recv
// return io.EOF.
type fakeStream struct {
	ctx context.Context
	in  chan recvItem

	mu      sync.Mutex
	sent    []*streamingpb.EchoResponse
	sendErr func(n int) error
}

type recvItem struct {
	req *streamingpb.EchoRequest
	err error
}

func newFakeStream(ctx context.Context) *fakeStream {
	return &fakeStream{ctx: ctx, in: make(chan recvItem)}
}

func (f *fakeStream) Context() context.Context {
	return f.ctx
}

func (f *fakeStream) Recv() (*streamingpb.EchoRequest, error) {
	select {
	case item, ok := <-f.in:
		if !ok {
			return nil, io.EOF
		}
		return item.req, item.err
	case <-f.ctx.Done():
		return nil, status.FromContextError(f.ctx.Err()).Err()
	}
}

func (f *fakeStream) Send(resp *streamingpb.EchoResponse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		if err := f.sendErr(len(f.sent)); err != nil {
			return err
		}
	}
	f.sent = append(f.sent, resp)
	return nil
}

func (f *fakeStream) responses() []*streamingpb.EchoResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*streamingpb.EchoResponse(nil), f.sent...)
}

// sendRequests writes count requests to the stream and then, if finalErr is
// not nil, returns it from Recv. Otherwise the inbound half is closed.
// It gives up when the stream's context is done.
func (f *fakeStream) sendRequests(count int, finalErr error) {
	for i := 0; i < count; i++ {
		if !f.deliver(recvItem{req: RequestAt(i)}) {
			return
		}
	}
	if finalErr != nil {
		f.deliver(recvItem{err: finalErr})
		return
	}
	close(f.in)
}

func (f *fakeStream) deliver(item recvItem) bool {
	select {
	case f.in <- item:
		return true
	case <-f.ctx.Done():
		return false
	}
}

func serveAsync(svc *EchoService, stream *fakeStream) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- svc.serveEcho(stream)
	}()
	return done
}

func waitForResult(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for call to finish")
		return nil
	}
}

// tagResponder answers with a single person named after the request.
func tagResponder(_ context.Context, req *streamingpb.EchoRequest) (*streamingpb.EchoResponse, error) {
	return &streamingpb.EchoResponse{Person: []*streamingpb.Person{{Name: req.GetMessage()}}}, nil
}

func TestEcho_RoundTrip(t *testing.T) {
	for _, count := range []int{0, 1, 3, 17} {
		count := count
		t.Run(fmt.Sprintf("%d requests", count), func(t *testing.T) {
			svc := NewEchoService()
			stream := newFakeStream(context.Background())
			done := serveAsync(svc, stream)
			stream.sendRequests(count, nil)

			require.NoError(t, waitForResult(t, done))
			resps := stream.responses()
			require.Len(t, resps, count)
			want := &streamingpb.EchoResponse{Person: People()}
			for i, resp := range resps {
				require.Truef(t, proto.Equal(want, resp), "response %d: %v", i, resp)
			}
		})
	}
}

func TestEcho_PreservesOrder(t *testing.T) {
	svc := NewEchoService(WithResponder(tagResponder), WithBufferSize(2))
	stream := newFakeStream(context.Background())
	done := serveAsync(svc, stream)
	stream.sendRequests(50, nil)

	require.NoError(t, waitForResult(t, done))
	resps := stream.responses()
	require.Len(t, resps, 50)
	for i, resp := range resps {
		require.Equal(t, RequestAt(i).GetMessage(), resp.GetPerson()[0].GetName())
	}
}

func TestEcho_Deterministic(t *testing.T) {
	svc := NewEchoService()
	var all [][]*streamingpb.EchoResponse
	for i := 0; i < 2; i++ {
		stream := newFakeStream(context.Background())
		done := serveAsync(svc, stream)
		stream.sendRequests(5, nil)
		require.NoError(t, waitForResult(t, done))
		all = append(all, stream.responses())
	}
	require.Len(t, all[0], 5)
	require.Len(t, all[1], 5)
	for i := range all[0] {
		require.True(t, proto.Equal(all[0][i], all[1][i]))
		require.True(t, proto.Equal(all[0][0], all[0][i]))
	}
}

func TestEcho_BrokenPipeEndsCleanly(t *testing.T) {
	svc := NewEchoService()
	stream := newFakeStream(context.Background())
	done := serveAsync(svc, stream)
	stream.sendRequests(2, errors.Wrap(brokenPipe(), "transport failure"))

	require.NoError(t, waitForResult(t, done))
	require.Len(t, stream.responses(), 2)
}

func TestEcho_ForwardsOtherErrors(t *testing.T) {
	svc := NewEchoService()
	stream := newFakeStream(context.Background())
	done := serveAsync(svc, stream)
	cause := status.Error(codes.DataLoss, "corrupt frame")
	stream.sendRequests(3, cause)

	err := waitForResult(t, done)
	require.Equal(t, cause, err)
	require.Len(t, stream.responses(), 3)
}

func TestEcho_ForwardsResponderErrors(t *testing.T) {
	failure := status.Error(codes.FailedPrecondition, "no more people")
	svc := NewEchoService(WithResponder(func(ctx context.Context, req *streamingpb.EchoRequest) (*streamingpb.EchoResponse, error) {
		if req.GetMessage() == RequestAt(2).GetMessage() {
			return nil, failure
		}
		return FixedResponder(ctx, req)
	}))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := newFakeStream(ctx)
	done := serveAsync(svc, stream)
	go stream.sendRequests(10, nil)

	require.Equal(t, failure, waitForResult(t, done))
	require.Len(t, stream.responses(), 2)
}

func TestEcho_SendFailure(t *testing.T) {
	svc := NewEchoService()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream := newFakeStream(ctx)
	sendFailure := status.Error(codes.Unavailable, "transport is closing")
	stream.sendErr = func(n int) error {
		if n == 1 {
			return sendFailure
		}
		return nil
	}
	done := serveAsync(svc, stream)
	go stream.sendRequests(10, nil)

	require.Equal(t, sendFailure, waitForResult(t, done))
	require.Len(t, stream.responses(), 1)
}

func TestEcho_RejectsCallsAfterShutdown(t *testing.T) {
	svc := NewEchoService()
	svc.InitiateShutdown()
	err := svc.serveEcho(newFakeStream(context.Background()))
	require.Equal(t, codes.Unavailable, status.Code(err))
}

func TestEcho_ConcurrentCallsAreIsolated(t *testing.T) {
	svc := NewEchoService(WithResponder(tagResponder))
	const calls = 8
	var wg sync.WaitGroup
	for c := 0; c < calls; c++ {
		count := 5 + c
		wg.Add(1)
		go func() {
			defer wg.Done()
			stream := newFakeStream(context.Background())
			done := serveAsync(svc, stream)
			stream.sendRequests(count, nil)
			if err := <-done; err != nil {
				t.Errorf("call with %d requests failed: %v", count, err)
				return
			}
			resps := stream.responses()
			if len(resps) != count {
				t.Errorf("expected %d responses, got %d", count, len(resps))
				return
			}
			for i, resp := range resps {
				if name := resp.GetPerson()[0].GetName(); name != RequestAt(i).GetMessage() {
					t.Errorf("response %d: expected %q, got %q", i, RequestAt(i).GetMessage(), name)
				}
			}
		}()
	}
	wg.Wait()
}

// endlessRecv returns requests forever, counting how many were pulled.
func endlessRecv(pulls *atomic.Int64) func() (*streamingpb.EchoRequest, error) {
	return func() (*streamingpb.EchoRequest, error) {
		n := pulls.Add(1)
		return RequestAt(int(n - 1)), nil
	}
}

func waitForDone(t *testing.T, call *echoCall) {
	t.Helper()
	select {
	case <-call.done:
	case <-time.After(5 * time.Second):
		t.Fatal("consumption goroutine did not exit")
	}
}

func TestEcho_Backpressure(t *testing.T) {
	const capacity = 4
	svc := NewEchoService(WithBufferSize(capacity))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var pulls atomic.Int64
	call := svc.echo(ctx, endlessRecv(&pulls))
	defer waitForDone(t, call)
	defer call.out.cancel()

	// fills the buffer, then pulls one more and waits to push it
	require.Eventually(t, func() bool { return pulls.Load() == capacity+1 }, time.Second, time.Millisecond)
	require.Never(t, func() bool { return pulls.Load() > capacity+1 }, 100*time.Millisecond, time.Millisecond)
	require.Equal(t, capacity, call.out.len())
	require.Equal(t, echoStreaming, call.getState())

	item, ok := call.out.dequeue(ctx)
	require.True(t, ok)
	require.NoError(t, item.err)
	require.Eventually(t, func() bool { return pulls.Load() == capacity+2 }, time.Second, time.Millisecond)
	require.Never(t, func() bool { return pulls.Load() > capacity+2 }, 100*time.Millisecond, time.Millisecond)
}

func TestEcho_ConsumerGone(t *testing.T) {
	svc := NewEchoService(WithBufferSize(1))
	var pulls atomic.Int64
	call := svc.echo(context.Background(), endlessRecv(&pulls))
	require.Eventually(t, func() bool { return pulls.Load() == 2 }, time.Second, time.Millisecond)

	call.out.cancel()
	waitForDone(t, call)
	require.Equal(t, echoAborted, call.getState())
	require.Equal(t, int64(2), pulls.Load())
}

func TestEcho_LogsBufferedResponses(t *testing.T) {
	logger := &recordingLogger{}
	svc := NewEchoService(WithBufferSize(4), WithLogger(logger))
	var n int
	call := svc.echo(context.Background(), func() (*streamingpb.EchoRequest, error) {
		n++
		if n > 3 {
			return nil, io.EOF
		}
		return RequestAt(n - 1), nil
	})
	// nothing dequeues, so all three responses are still buffered
	waitForDone(t, call)
	buffered, ok := logger.field("inbound finished", "buffered")
	require.True(t, ok)
	require.Equal(t, 3, buffered)
	require.Equal(t, int64(3), call.received.Load())
}

func TestEcho_States(t *testing.T) {
	testCases := []struct {
		name    string
		recvErr error
		want    echoState
	}{
		{"completed", io.EOF, echoCompleted},
		{"aborted", brokenPipe(), echoAborted},
		{"failed", status.Error(codes.Internal, "boom"), echoFailed},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewEchoService()
			var n int
			call := svc.echo(context.Background(), func() (*streamingpb.EchoRequest, error) {
				n++
				if n > 1 {
					return nil, tc.recvErr
				}
				return RequestAt(0), nil
			})
			waitForDone(t, call)
			require.Equal(t, tc.want, call.getState())
			require.Equal(t, int64(1), call.received.Load())
			require.Equal(t, tc.want.String(), call.getState().String())
		})
	}
}

func TestEcho_LogsBrokenPipe(t *testing.T) {
	logger := &recordingLogger{}
	svc := NewEchoService(WithLogger(logger))
	var n int
	call := svc.echo(context.Background(), func() (*streamingpb.EchoRequest, error) {
		n++
		if n > 2 {
			return nil, brokenPipe()
		}
		return RequestAt(n - 1), nil
	})
	waitForDone(t, call)
	require.True(t, logger.saw("client disconnected: broken pipe"))
}
