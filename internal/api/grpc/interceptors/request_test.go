package interceptors

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLoggingUnaryInterceptor(t *testing.T) {
	tests := []struct {
		name      string
		handlerFn grpc.UnaryHandler
		wantLevel string
		wantCode  string
	}{
		{
			name:      "успех",
			handlerFn: func(ctx context.Context, req any) (any, error) { return "ok", nil },
			wantLevel: "level=INFO",
			wantCode:  "grpc_code=OK",
		},
		{
			name: "статус-ошибка",
			handlerFn: func(ctx context.Context, req any) (any, error) {
				return nil, status.Error(codes.InvalidArgument, "division by zero is not allowed")
			},
			wantLevel: "level=WARN",
			wantCode:  "grpc_code=InvalidArgument",
		},
		{
			name: "внутренняя ошибка",
			handlerFn: func(ctx context.Context, req any) (any, error) {
				return nil, errors.New("notify observer 0: journal down")
			},
			wantLevel: "level=ERROR",
			wantCode:  "grpc_code=Unknown",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			icpt := LoggingUnaryInterceptor(slog.New(slog.NewTextHandler(&buf, nil)))
			info := &grpc.UnaryServerInfo{FullMethod: "/calculator.v1.CalculatorService/Calculate"}

			_, _ = icpt(context.Background(), nil, info, tt.handlerFn)

			out := buf.String()
			assert.Contains(t, out, tt.wantLevel)
			assert.Contains(t, out, tt.wantCode)
			assert.Contains(t, out, "method=/calculator.v1.CalculatorService/Calculate")
		})
	}
}
