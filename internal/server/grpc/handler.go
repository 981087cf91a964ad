package grpc

import (
	"context"
	"errors"

	"github.com/striderapp/tokenkeeper/internal/common"
	pb "github.com/striderapp/tokenkeeper/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) IssueTokens(ctx context.Context, req *pb.IssueTokensRequest) (*pb.IssueTokensResponse, error) {

	if req.GetUserId() == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	pair, err := s.tokens.IssuePair(ctx, req.GetUserId())

	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unknown user")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.IssueTokensResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}, nil

}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.RefreshResponse, error) {

	pair, user, err := s.tokens.Refresh(ctx, req.GetRefreshToken())

	if err != nil {
		return nil, refreshStatus(err)
	}

	return &pb.RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		UserId:       user.ID,
	}, nil

}

// refreshStatus translates rotation outcomes into gRPC statuses. The
// benign duplicate gets a retryable code so clients can distinguish it
// from a dead session.
func refreshStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrTokenAlreadyRefreshed):
		return status.Error(codes.Aborted, "token already refreshed")
	case errors.Is(err, common.ErrTokenReused):
		return status.Error(codes.Unauthenticated, "token reuse detected")
	case errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "token expired")
	case errors.Is(err, common.ErrTokenInvalid):
		return status.Error(codes.Unauthenticated, "invalid token")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Revoke(ctx context.Context, req *pb.RevokeRequest) (*pb.RevokeResponse, error) {

	if err := s.tokens.Revoke(ctx, req.GetRefreshToken()); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RevokeResponse{}, nil

}

func (s *GRPCServer) RevokeAll(ctx context.Context, req *pb.RevokeAllRequest) (*pb.RevokeAllResponse, error) {

	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return nil, status.Error(codes.Internal, "no user in context")
	}

	if err := s.tokens.RevokeAllForUser(ctx, userID); err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Revoked all sessions", "user_id", userID)
	return &pb.RevokeAllResponse{}, nil

}
