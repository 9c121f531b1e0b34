package internal

import (
	"context"
	"sync/atomic"

	"github.com/fullstorydev/grpchan"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/jhump/streamecho"
	"github.com/jhump/streamecho/streamingpb"
)

// RunCalls runs the given number of Echo calls concurrently, each one
// sending count requests. The handler, if not nil, is called for every
// response of every call, from multiple goroutines at once, along with the
// index of the call it belongs to. The first call to fail cancels the rest.
func RunCalls(ctx context.Context, client streamingpb.StreamingClient, calls, count int, handle func(call int, resp *streamingpb.EchoResponse) error) error {
	grp, ctx := errgroup.WithContext(ctx)
	for i := 0; i < calls; i++ {
		i := i
		grp.Go(func() error {
			var handler streamecho.ResponseHandler
			if handle != nil {
				handler = func(resp *streamingpb.EchoResponse) error {
					return handle(i, resp)
				}
			}
			return errors.Wrapf(streamecho.RunBidiEcho(ctx, client, count, handler), "call %d", i+1)
		})
	}
	return grp.Wait()
}

// WithStreamCounts returns a channel that counts every stream opened through
// ch, and every unary RPC invoked through it, in counts.
func WithStreamCounts(ch grpc.ClientConnInterface, counts *atomic.Int32) grpc.ClientConnInterface {
	return grpchan.InterceptClientConn(
		ch,
		func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
			counts.Add(1)
			return invoker(ctx, method, req, reply, cc, opts...)
		},
		func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
			counts.Add(1)
			return streamer(ctx, desc, cc, method, opts...)
		},
	)
}
