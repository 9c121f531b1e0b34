package streamecho

import (
	"context"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// recoverCall turns a panic in a single handler into an "Internal" error so
// that it fails only that call, and logs how the call finished.
func recoverCall(logger log.Logger, method string, start time.Time, err *error) {
	if p := recover(); p != nil {
		level.Error(logger).Log("event", "handler panic", "method", method, "panic", p)
		*err = status.Errorf(codes.Internal, "panic in handler for %s: %v", method, p)
	}
	level.Debug(logger).Log("event", "call finished", "method", method,
		"code", status.Code(*err), "took", time.Since(start))
}

func unaryServerInterceptor(logger log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer recoverCall(logger, info.FullMethod, time.Now(), &err)
		return handler(ctx, req)
	}
}

func streamServerInterceptor(logger log.Logger) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer recoverCall(logger, info.FullMethod, time.Now(), &err)
		level.Debug(logger).Log("event", "call started", "method", info.FullMethod)
		return handler(srv, ss)
	}
}
