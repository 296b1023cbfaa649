package grpc

import (
	"context"
	"log/slog"
	"net"

	"google.golang.org/grpc"

	calculatorv1 "github.com/AraxHub/calc-proto/gen/go/calculator/v1"

	"github.com/riaaa16/advanced-calc/internal/api/grpc/calculator"
	"github.com/riaaa16/advanced-calc/internal/api/grpc/interceptors"
	"github.com/riaaa16/advanced-calc/internal/ports"
)

// Config — настройки gRPC-сервера. Переменные: CALCULATOR_GRPC_HOST, CALCULATOR_GRPC_PORT.
type Config struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port string `envconfig:"PORT" default:"9090"`
}

// Addr — "host:port".
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Server — gRPC-сервер: регистрирует сервисы и слушает порт.
type Server struct {
	grpc *grpc.Server
	addr string
}

// NewServer создаёт gRPC-сервер и регистрирует CalculatorService. Логирующий интерцептор пишет метод, latency_ms и grpc_code.
func NewServer(cfg Config, uc ports.ICalculatorUseCase, log *slog.Logger) *Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors.LoggingUnaryInterceptor(log)))
	calculatorv1.RegisterCalculatorServiceServer(s, calculator.New(uc, log))
	return &Server{grpc: s, addr: cfg.Addr()}
}

// Start слушает addr и принимает соединения (блокируется). Остановка через Stop().
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve принимает соединения на готовом листенере (блокируется).
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop останавливает сервер (graceful). Если ctx истёк раньше — жёсткая остановка.
func (s *Server) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}
