package internal

import (
	"context"
	"net"
	"sync"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
)

// BlockingDial creates a client conn for the given address and waits for it
// to become ready. If ctx is done first, it returns the most recent error
// from dialing the network, or the context error if there was none. A
// non-temporary dial error aborts the wait right away.
//
// Nothing is left behind when it fails, so it may be retried freely.
func BlockingDial(ctx context.Context, addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var tracker dialTracker
	cc, err := grpc.NewClient(addr, append(opts,
		grpc.WithContextDialer(func(dialCtx context.Context, addr string) (net.Conn, error) {
			conn, err := keepAliveDialer().DialContext(dialCtx, "tcp", addr)
			if err != nil {
				tracker.record(err)
				if !isTemporary(err) {
					cancel()
				}
			}
			return conn, err
		}))...,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create client for %s", addr)
	}

	cc.Connect()
	for {
		state := cc.GetState()
		if state == connectivity.Ready {
			return cc, nil
		}
		if !cc.WaitForStateChange(ctx, state) {
			_ = cc.Close()
			if err := tracker.last(); err != nil {
				return nil, err
			}
			return nil, ctx.Err()
		}
	}
}

// keepAliveDialer always enables TCP keepalive but leaves its time and
// interval to the OS defaults.
func keepAliveDialer() *net.Dialer {
	return &net.Dialer{
		// negative keeps the stdlib from overriding the OS parameters
		KeepAlive: time.Duration(-1),
		Control: func(_, _ string, c syscall.RawConn) error {
			return c.Control(func(fd uintptr) {
				_ = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_KEEPALIVE, 1)
			})
		},
	}
}

type dialTracker struct {
	mu  sync.Mutex
	err error
}

func (t *dialTracker) record(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.err = err
}

func (t *dialTracker) last() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// same rules as grpc-go
func isTemporary(err error) bool {
	switch err := err.(type) {
	case interface {
		Temporary() bool
	}:
		return err.Temporary()
	case interface {
		Timeout() bool
	}:
		// Timeouts may be resolved upon retry, and are thus treated as
		// temporary.
		return err.Timeout()
	}
	return true
}
