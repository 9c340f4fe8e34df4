package grpc

import (
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/harborbank/scoring-service/pkg/tlsutil"
)

// Options controls the transport setup of the gRPC server.
type Options struct {
	// CertFile and KeyFile enable TLS when both are set.
	CertFile string
	KeyFile  string
	// Reflection exposes the service descriptors to grpcurl and friends.
	Reflection bool
}

// Server hosts the scoring RPCs alongside the standard health service.
type Server struct {
	gs     *grpc.Server
	logger *slog.Logger
}

// NewServer wires the scoring handler into a gRPC server. It fails when TLS
// is requested but the key pair cannot be loaded.
func NewServer(handler *ScoringHandler, logger *slog.Logger, opts Options) (*Server, error) {
	var serverOpts []grpc.ServerOption
	switch {
	case opts.CertFile != "" && opts.KeyFile != "":
		creds, err := tlsutil.ServerTLSConfig(opts.CertFile, opts.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("grpc server TLS: %w", err)
		}
		serverOpts = append(serverOpts, grpc.Creds(creds))
		logger.Info("gRPC TLS enabled", "cert", opts.CertFile)
	case opts.CertFile != "" || opts.KeyFile != "":
		return nil, fmt.Errorf("grpc server TLS: need both cert and key files")
	default:
		logger.Info("gRPC TLS not configured, serving plaintext")
	}

	gs := grpc.NewServer(serverOpts...)
	RegisterScoringServiceServer(gs, handler)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(gs, healthSrv)
	healthSrv.SetServingStatus("harborbank.scoring.v1.ScoringService", healthpb.HealthCheckResponse_SERVING)

	if opts.Reflection {
		reflection.Register(gs)
	}

	return &Server{gs: gs, logger: logger}, nil
}

// Serve blocks, accepting connections on addr.
func (s *Server) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	s.logger.Info("gRPC server listening", "addr", addr)
	return s.gs.Serve(lis)
}

// GracefulStop drains in-flight RPCs and stops the server.
func (s *Server) GracefulStop() {
	s.logger.Info("gRPC server shutting down")
	s.gs.GracefulStop()
}
