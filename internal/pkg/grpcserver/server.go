package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"delivery-estimator/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"
)

const (
	KeepaliveTime                = 5 * time.Minute
	KeepaliveTimeout             = 3 * time.Second
	KeepaliveMinTime             = 30 * time.Second
	KeepalivePermitWithoutStream = false
)

// Server wraps grpc.Server together with the standard health service.
type Server struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
}

func New(log logger.Logger) *Server {
	grpcLog := log.With(
		logger.NewField("component", "grpc-server"),
	)

	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
		grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             KeepaliveMinTime,
			PermitWithoutStream: KeepalivePermitWithoutStream,
		}),
		grpc.ChainUnaryInterceptor(unaryInterceptor(grpcLog)),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(server, healthServer)

	return &Server{
		log:    grpcLog,
		server: server,
		health: healthServer,
	}
}

// Register adds a service and marks it SERVING in the health service.
func (s *Server) Register(desc *grpc.ServiceDesc, impl any) {
	s.server.RegisterService(desc, impl)
	s.health.SetServingStatus(desc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)
}

// Serve blocks until the listener is closed or Shutdown is called.
func (s *Server) Serve(lis net.Listener) error {
	s.log.With(
		logger.NewField("address", lis.Addr().String()),
	).Info("gRPC server listening")

	err := s.server.Serve(lis)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// Shutdown flips every service to NOT_SERVING and drains in-flight calls,
// forcing a stop when ctx expires first.
func (s *Server) Shutdown(ctx context.Context) {
	s.health.Shutdown()

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		s.log.Info("gRPC server stopped gracefully")
	case <-ctx.Done():
		s.server.Stop()
		s.log.Warn("gRPC server forced to stop")
	}
}

func unaryInterceptor(log logger.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		duration := time.Since(start)
		code := status.Code(err).String()

		GRPCRequestDuration.WithLabelValues(info.FullMethod, code).Observe(duration.Seconds())
		GRPCRequestTotal.WithLabelValues(info.FullMethod, code).Inc()

		log.With(
			logger.NewField("method", info.FullMethod),
			logger.NewField("code", code),
			logger.NewField("duration", duration.String()),
		).Info("gRPC request")

		return resp, err
	}
}
