package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/jhump/streamecho/internal"
	"github.com/jhump/streamecho/internal/logging"
	"github.com/jhump/streamecho/streamingpb"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run makes the requested calls, printing responses to stdout and logs to
// stderr, and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("echoclient", flag.ContinueOnError)
	fs.SetOutput(stderr)
	serverHost := fs.String("server-host", "127.0.0.1", "the host on which the server is listening")
	serverPort := fs.Int("server-port", 50051, "the port on which the server is listening")
	count := fs.Int("count", 1, "the number of requests to send on each call; -1 never stops")
	calls := fs.Int("calls", 1, "the number of concurrent calls")
	dialTimeout := fs.Duration("dial-timeout", 5*time.Second, "how long to wait for the connection to become ready")
	debug := fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := logging.New(stderr, "echoclient", *debug)

	ctx := context.Background()
	dialCtx, cancel := context.WithTimeout(ctx, *dialTimeout)
	defer cancel()
	addr := net.JoinHostPort(*serverHost, strconv.Itoa(*serverPort))
	cc, err := internal.BlockingDial(dialCtx, addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		level.Error(logger).Log("event", "failed to connect", "err", err)
		return 1
	}
	defer func() {
		_ = cc.Close()
	}()
	level.Debug(logger).Log("event", "connected", "addr", addr)

	var callCount atomic.Int32
	var received atomic.Int64
	client := streamingpb.NewStreamingClient(internal.WithStreamCounts(cc, &callCount))

	fmt.Fprintln(stdout, "Bidirectional stream echo:")
	start := time.Now()
	err = internal.RunCalls(ctx, client, *calls, *count, func(_ int, resp *streamingpb.EchoResponse) error {
		received.Add(1)
		fmt.Fprintf(stdout, "\treceived message: `%v`\n", resp.GetPerson())
		return nil
	})
	if err != nil {
		level.Error(logger).Log("event", "echo failed", "err", err)
		return 1
	}
	level.Info(logger).Log("event", "done",
		"calls", humanize.Comma(int64(callCount.Load())),
		"responses", humanize.Comma(received.Load()),
		"took", time.Since(start).Round(time.Millisecond))
	return 0
}
