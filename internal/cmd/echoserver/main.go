package main

import (
	"flag"
	"io"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-kit/kit/log/level"

	"github.com/jhump/streamecho"
	"github.com/jhump/streamecho/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run serves until the process is signaled and returns the exit code.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("echoserver", flag.ContinueOnError)
	fs.SetOutput(stderr)
	host := fs.String("host", "127.0.0.1", "the host on which this server will listen")
	port := fs.Int("port", 50051, "the port on which this server will listen")
	bufferSize := fs.Int("buffer", streamecho.DefaultBufferSize, "the capacity of each call's outbound buffer")
	debug := fs.Bool("debug", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := logging.New(stderr, "echoserver", *debug)

	svr := streamecho.NewServer(
		streamecho.WithBufferSize(*bufferSize),
		streamecho.WithLogger(logger),
	)

	lis, err := net.Listen("tcp", net.JoinHostPort(*host, strconv.Itoa(*port)))
	if err != nil {
		level.Error(logger).Log("event", "failed to listen", "err", err)
		return 1
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		sig := <-sigs
		level.Info(logger).Log("event", "shutting down", "signal", sig)
		svr.GracefulStop()
	}()

	level.Info(logger).Log("event", "listening", "addr", lis.Addr().String())
	// This only returns with an error on failure. After a
	// signal, GracefulStop makes it return nil.
	if err := svr.Serve(lis); err != nil {
		level.Error(logger).Log("event", "serve failed", "err", err)
		return 1
	}
	return 0
}
