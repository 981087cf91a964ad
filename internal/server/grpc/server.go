package grpc

import (
	"context"
	"net"

	"github.com/striderapp/tokenkeeper/internal/logging"
	pb "github.com/striderapp/tokenkeeper/internal/proto"
	"github.com/striderapp/tokenkeeper/internal/server/models"
	"github.com/striderapp/tokenkeeper/internal/server/services"
	"google.golang.org/grpc"
)

// tokenSvc is the slice of services.TokenService the transport needs.
type tokenSvc interface {
	IssuePair(ctx context.Context, userID string) (*services.TokenPair, error)
	Refresh(ctx context.Context, rawToken string) (*services.TokenPair, *models.User, error)
	Revoke(ctx context.Context, rawToken string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}

type GRPCServer struct {
	pb.UnimplementedTokenKeeperServiceServer
	address   string
	tokens    tokenSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, ts tokenSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		tokens:    ts,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterTokenKeeperServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
