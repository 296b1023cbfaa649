package ports

//go:generate mockgen -source=journal.go -destination=../mocks/journal_mock.go -package=mocks

import (
	"context"

	"github.com/riaaa16/advanced-calc/internal/domain"
)

// IJournalReader — чтение журнала и кэша результатов для API.
type IJournalReader interface {
	Journal(ctx context.Context) ([]domain.Record, error)
	Cached(ctx context.Context, key string) (float64, bool, error)
}

// IHealthChecker — проверка зависимостей для readiness.
type IHealthChecker interface {
	Ping(ctx context.Context) error
}
