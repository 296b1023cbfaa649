package interceptors

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingUnaryInterceptor логирует каждый unary RPC: метод, длительность, код и ошибку.
// Ошибки клиента — Warn, серверные (Internal, Unknown) — Error.
func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		attrs := []any{"method", info.FullMethod, "latency_ms", time.Since(start).Milliseconds()}
		if err == nil {
			log.Info("grpc request", append(attrs, "grpc_code", codes.OK)...)
			return resp, nil
		}

		st := status.Convert(err)
		attrs = append(attrs, "grpc_code", st.Code(), "error", st.Message())
		switch st.Code() {
		case codes.Internal, codes.Unknown:
			log.Error("grpc request", attrs...)
		default:
			log.Warn("grpc request", attrs...)
		}
		return resp, err
	}
}
