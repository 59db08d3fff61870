package catalog

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/smartcup-service/internal/app/catalog/domain"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, domain.ErrSessionNotFound):
		return status.Error(codes.NotFound, "session not found or expired")

	case errors.Is(err, domain.ErrInvalidItemID):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, domain.ErrUnknownSortKey):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")

	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
