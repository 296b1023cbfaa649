package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/riaaa16/advanced-calc/internal/domain"
)

// IJournalRepository — контракт сохранения и чтения журнала вычислений.
type IJournalRepository interface {
	SaveRecord(ctx context.Context, rec domain.Record) error
	GetJournal(ctx context.Context) ([]domain.Record, error)
	Ping(ctx context.Context) error
}
