package streamecho

import (
	"net"
	"sync"

	"github.com/fullstorydev/grpchan"
	"github.com/fullstorydev/grpchan/inprocgrpc"
	"github.com/pkg/errors"
	"google.golang.org/grpc"

	"github.com/jhump/streamecho/streamingpb"
)

// Server exposes an EchoService over gRPC. The same handlers are available
// over the network, via Serve, and in-process, via AsChannel.
type Server struct {
	svc      *EchoService
	handlers grpchan.HandlerMap
	grpcSvr  *grpc.Server

	inprocOnce sync.Once
	inproc     inprocgrpc.Channel
}

// NewServer creates a new Server with a new EchoService configured by the
// given options. Every call goes through interceptors that log the call and
// recover from panics in the handler.
func NewServer(opts ...Option) *Server {
	o := newEchoOpts(opts)
	svc := newEchoService(o)

	handlers := grpchan.HandlerMap{}
	reg := grpchan.WithInterceptor(handlers,
		unaryServerInterceptor(o.logger), streamServerInterceptor(o.logger))
	streamingpb.RegisterStreamingServer(reg, svc)

	gs := grpc.NewServer(o.serverOpts...)
	handlers.ForEach(gs.RegisterService)

	return &Server{
		svc:      svc,
		handlers: handlers,
		grpcSvr:  gs,
	}
}

// Service returns the EchoService that handles calls for this server.
func (s *Server) Service() *EchoService {
	return s.svc
}

// Serve accepts connections on lis and blocks until the server is stopped
// or lis fails.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpcSvr.Serve(lis)
}

// ListenAndServe listens on the given TCP address and then calls Serve.
func (s *Server) ListenAndServe(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", addr)
	}
	return s.Serve(lis)
}

// AsChannel returns a channel that dispatches calls to this server's
// handlers in-process, without any network or serialization.
func (s *Server) AsChannel() grpc.ClientConnInterface {
	s.inprocOnce.Do(func() {
		s.handlers.ForEach(s.inproc.RegisterService)
	})
	return &s.inproc
}

// Stop stops the server immediately, canceling all calls in progress.
func (s *Server) Stop() {
	s.svc.InitiateShutdown()
	s.grpcSvr.Stop()
}

// GracefulStop rejects new calls and waits for those in progress to finish.
func (s *Server) GracefulStop() {
	s.svc.InitiateShutdown()
	s.grpcSvr.GracefulStop()
}
