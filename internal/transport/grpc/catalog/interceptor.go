package catalog

import (
	"context"
	"log/slog"
	"path"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/smartcup-service/internal/metrics"
)

// UnaryServerInterceptor counts every call by method and status code and logs
// failures. Internal errors log at error level, client errors at debug.
func UnaryServerInterceptor(registry *metrics.Registry, logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		method := path.Base(info.FullMethod)
		registry.ObserveRequest("grpc", method, code.String())

		if err != nil {
			level := slog.LevelDebug
			if code == codes.Internal || code == codes.Unknown {
				level = slog.LevelError
			}
			logger.Log(ctx, level, "grpc call failed",
				slog.String("method", method),
				slog.String("code", code.String()),
				slog.String("error", err.Error()),
				slog.Duration("duration", time.Since(start)),
			)
		}
		return resp, err
	}
}
