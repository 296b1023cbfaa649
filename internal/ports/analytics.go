package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"github.com/riaaa16/advanced-calc/internal/domain"
)

// IRecordAnalytics — запись вычислений в хранилище для аналитики (например, ClickHouse).
type IRecordAnalytics interface {
	WriteRecord(ctx context.Context, rec domain.Record) error
}
