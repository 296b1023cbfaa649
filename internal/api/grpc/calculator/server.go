package calculator

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	calculatorv1 "github.com/AraxHub/calc-proto/gen/go/calculator/v1"

	"github.com/riaaa16/advanced-calc/internal/domain"
	"github.com/riaaa16/advanced-calc/internal/ports"
)

// Server реализует gRPC CalculatorService поверх юзкейса калькулятора.
type Server struct {
	calculatorv1.UnimplementedCalculatorServiceServer
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт gRPC-сервис калькулятора.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{uc: uc, log: log}
}

// Calculate вызывает use case и возвращает результат или gRPC-ошибку.
// Ошибки ввода (операция, операнды, деление на ноль) — InvalidArgument.
func (s *Server) Calculate(ctx context.Context, req *calculatorv1.CalculateRequest) (*calculatorv1.CalculateResponse, error) {
	result, err := s.uc.Calculate(ctx, req.GetOperation(), domain.Float(req.GetNumber1()), domain.Float(req.GetNumber2()))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownOperation) ||
			errors.Is(err, domain.ErrInvalidOperand) ||
			errors.Is(err, domain.ErrDivisionByZero) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.log.Error("calculate failed", "error", err)
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &calculatorv1.CalculateResponse{Result: result.Float64()}, nil
}

// History возвращает историю вычислений процесса. Упавшие вычисления приходят с Message.
func (s *Server) History(ctx context.Context, _ *calculatorv1.HistoryRequest) (*calculatorv1.HistoryResponse, error) {
	list := s.uc.History(ctx)
	items := make([]*calculatorv1.HistoryItem, len(list))
	for i, c := range list {
		rec := domain.NewRecord(c)
		items[i] = &calculatorv1.HistoryItem{
			Id:                int32(i + 1),
			Number1:           rec.Number1,
			Number2:           rec.Number2,
			Operation:         rec.Operation,
			Result:            rec.Result,
			Message:           rec.Message,
			TimestampUnixNano: rec.Timestamp.UnixNano(),
		}
	}
	return &calculatorv1.HistoryResponse{Items: items}, nil
}
