package grpcserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"dispatch/internal/pkg/config"
	"dispatch/pkg/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

const (
	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second

	// ServiceName имя, под которым health отдает статус диспетчера.
	// Пустое имя отвечает за сервер целиком.
	ServiceName = "dispatch"
)

// HealthServer gRPC сервер со стандартным grpc.health.v1.
type HealthServer struct {
	server *grpc.Server
	health *health.Server
	port   string
	log    logger.Logger
}

func New(log logger.Logger, cfg *config.GRPCServer) *HealthServer {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	return &HealthServer{
		server: server,
		health: healthServer,
		port:   cfg.HealthPort,
		log: log.With(
			logger.NewField("component", "grpc-health"),
			logger.NewField("port", cfg.HealthPort),
		),
	}
}

// ListenAndServe блокируется до Shutdown.
func (s *HealthServer) ListenAndServe() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", s.port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(lis)
}

func (s *HealthServer) Serve(lis net.Listener) error {
	s.log.Info("gRPC health server starting")

	err := s.server.Serve(lis)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// SetNotServing переводит все сервисы в NOT_SERVING. Вызывается в начале
// остановки, чтобы балансировщик успел снять инстанс.
func (s *HealthServer) SetNotServing() {
	s.health.Shutdown()
	s.log.Info("gRPC health switched to NOT_SERVING")
}

// Shutdown ждет активные RPC до отмены ctx, потом рвет соединения.
func (s *HealthServer) Shutdown(ctx context.Context) {
	s.health.Shutdown()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.server.GracefulStop()
	}()

	select {
	case <-done:
	case <-ctx.Done():
		s.log.Warn("gRPC graceful stop timeout, forcing stop")
		s.server.Stop()
		<-done
	}
}
