package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

func (s *GRPCServer) loggingUnaryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	if err != nil {
		s.logger.Error(ctx, "rpc failed", "method", info.FullMethod, "duration", time.Since(start), "error", err)
	} else {
		s.logger.Info(ctx, "rpc handled", "method", info.FullMethod, "duration", time.Since(start))
	}
	return resp, err
}

func (s *GRPCServer) loggingStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()
	ctx := ss.Context()

	err := handler(srv, ss)

	if err != nil {
		s.logger.Error(ctx, "stream failed", "method", info.FullMethod, "duration", time.Since(start), "error", err)
	} else {
		s.logger.Info(ctx, "stream handled", "method", info.FullMethod, "duration", time.Since(start))
	}
	return err
}
