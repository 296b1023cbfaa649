package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"github.com/riaaa16/advanced-calc/internal/domain"
)

// ICalculatorUseCase — контракт бизнес-логики калькулятора для API (HTTP, gRPC).
type ICalculatorUseCase interface {
	Calculate(ctx context.Context, operation string, a, b domain.Number) (domain.Number, error)
	History(ctx context.Context) []domain.Calculation
	Clear(ctx context.Context)
	Operations() []string
}

// IRecordHandler — обработчик событий из топика вычислений (вызывается консьюмером Kafka).
type IRecordHandler interface {
	HandleRecordEvent(ctx context.Context, rec domain.Record) error
}
